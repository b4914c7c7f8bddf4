package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/unclebandit/storefront/internal/queue"
	"github.com/unclebandit/storefront/internal/service"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Send order confirmations from the message broker",
	Long:  "Consumes order-placed events from RabbitMQ and sends a confirmation for each",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Queue.URL == "" {
			return fmt.Errorf("worker needs a broker; set AMQP_URL or queue.url")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		q, err := queue.DialAMQP(cfg.Queue.URL, logger)
		if err != nil {
			return err
		}
		defer q.Close()
		closed := q.NotifyClose()

		confirmations := &service.ConfirmationService{
			Sender: &service.LogSender{Logger: logger},
			Logger: logger,
		}
		if err := confirmations.Subscribe(q, cfg.Queue.OrderTopic); err != nil {
			return err
		}

		logger.Info("worker running, waiting for order events", "topic", cfg.Queue.OrderTopic)
		select {
		case <-ctx.Done():
			logger.Info("worker stopping")
			return nil
		case amqpErr := <-closed:
			if amqpErr == nil {
				return nil
			}
			return fmt.Errorf("broker connection lost: %w", amqpErr)
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
