// internal/handler/page_handler.go
package handler

import (
	"net/http"
	"os"
)

// PageHandler serves the storefront page and the files under PublicDir.
type PageHandler struct {
	PublicDir string
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}

// Static serves PublicDir, or 404s everything when the directory does not exist.
func (h *PageHandler) Static() http.Handler {
	if info, err := os.Stat(h.PublicDir); err != nil || !info.IsDir() {
		return http.NotFoundHandler()
	}
	return http.FileServer(http.Dir(h.PublicDir))
}

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>E-Commerce App</title>
    <style>
        body { font-family: Arial, sans-serif; background: #f4f7fb; margin: 0; padding: 0; }
        nav { background: #292828; padding: 10px; text-align: center; }
        nav a { color: white; text-decoration: none; margin: 0 10px; }
        .product-list { display: flex; flex-wrap: wrap; justify-content: space-around; margin: 20px; }
        .product { background: white; padding: 20px; margin: 10px; border-radius: 8px; box-shadow: 0 4px 8px rgba(0,0,0,0.1); }
        .product img { max-width: 100%; }
        .order-form { display: none; padding: 20px; background: white; max-width: 400px; margin: 20px auto; box-shadow: 0 4px 8px rgba(0,0,0,0.1); border-radius: 8px; }
    </style>
</head>
<body>
    <nav>
        <a href="/">Home</a>
    </nav>
    <div class="product-list" id="product-list"></div>
    <div class="order-form" id="order-form">
        <h2>Place Your Order</h2>
        <form id="orderForm">
            <input type="hidden" id="productId">
            <label>Name: <input type="text" id="customerName" required></label><br><br>
            <label>Email: <input type="email" id="customerEmail" required></label><br><br>
            <label>Phone: <input type="text" id="customerPhone" required></label><br><br>
            <label>Address: <textarea id="customerAddress" required></textarea></label><br><br>
            <button type="submit">Submit Order</button>
        </form>
    </div>
    <script>
        function el(tag, text) {
            const node = document.createElement(tag);
            if (text !== undefined) node.textContent = text;
            return node;
        }

        fetch('/products')
            .then(res => res.json())
            .then(data => {
                const productList = document.getElementById('product-list');
                data.forEach(product => {
                    const productDiv = el('div');
                    productDiv.className = 'product';
                    const img = el('img');
                    img.src = product.image_url;
                    img.alt = product.name;
                    const buy = el('button', 'Buy Now');
                    buy.addEventListener('click', () => showOrderForm(product.id));
                    productDiv.append(img, el('h3', product.name), el('p', product.description),
                        el('p', 'Price: $' + product.price), buy);
                    productList.appendChild(productDiv);
                });
            });

        function showOrderForm(productId) {
            document.getElementById('productId').value = productId;
            document.getElementById('order-form').style.display = 'block';
        }

        document.getElementById('orderForm').addEventListener('submit', function(e) {
            e.preventDefault();
            const order = {
                product_id: document.getElementById('productId').value,
                name: document.getElementById('customerName').value,
                email: document.getElementById('customerEmail').value,
                phone: document.getElementById('customerPhone').value,
                address: document.getElementById('customerAddress').value,
                quantity: 1
            };
            fetch('/place-order', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify(order)
            })
            .then(res => res.json())
            .then(data => alert(data.message || data.error));
        });
    </script>
</body>
</html>
`
