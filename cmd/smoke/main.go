// Command smoke exercises a running server end to end: it browses the
// catalog, fills a cart, checks out and verifies the order landed as
// Pending.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

type product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

type cartView struct {
	TotalQuantity int     `json:"totalQuantity"`
	Subtotal      float64 `json:"subtotal"`
	Fee           float64 `json:"fee"`
	Total         float64 `json:"total"`
}

type order struct {
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`
}

func main() {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	jar, _ := cookiejar.New(nil)
	client := &http.Client{Jar: jar, Timeout: 5 * time.Second}

	start := time.Now()

	var products []product
	mustGet(client, baseURL+"/api/products", &products)
	if len(products) == 0 {
		fatal("catalog is empty")
	}
	fmt.Printf("catalog: %d products\n", len(products))

	// Two of the first product, one of the second.
	mustPost(client, baseURL+"/api/cart/items", map[string]string{"item_id": products[0].ID}, nil)
	mustPost(client, baseURL+"/api/cart/items", map[string]string{"item_id": products[0].ID}, nil)
	if len(products) > 1 {
		mustPost(client, baseURL+"/api/cart/items", map[string]string{"item_id": products[1].ID}, nil)
	}

	var cart cartView
	mustGet(client, baseURL+"/api/cart", &cart)
	fmt.Printf("cart: %d items, subtotal %.2f, fee %.2f, total %.2f\n",
		cart.TotalQuantity, cart.Subtotal, cart.Fee, cart.Total)

	var placed order
	mustPost(client, baseURL+"/api/checkout", map[string]string{
		"customer_name": "Smoke Test",
		"size":          "M",
	}, &placed)

	elapsed := time.Since(start)

	fmt.Println("========== SMOKE TEST RESULTS ==========")
	fmt.Printf("Order Number:  %s\n", placed.OrderNumber)
	fmt.Printf("Status:        %s\n", placed.Status)
	fmt.Printf("Duration:      %v\n", elapsed)
	fmt.Println("========================================")

	if placed.Status != "Pending" {
		fatal(fmt.Sprintf("expected Pending order, got %s", placed.Status))
	}

	// Cart must be empty after checkout.
	mustGet(client, baseURL+"/api/cart", &cart)
	if cart.TotalQuantity != 0 {
		fatal(fmt.Sprintf("expected empty cart after checkout, got %d items", cart.TotalQuantity))
	}
	fmt.Println("PASS: order placed and cart cleared")
}

func mustGet(client *http.Client, url string, out interface{}) {
	resp, err := client.Get(url)
	if err != nil {
		fatal(fmt.Sprintf("GET %s: %v", url, err))
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		fatal(fmt.Sprintf("GET %s: status %d", url, resp.StatusCode))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			fatal(fmt.Sprintf("GET %s: decode: %v", url, err))
		}
	}
}

func mustPost(client *http.Client, url string, body interface{}, out interface{}) {
	payload, _ := json.Marshal(body)
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		fatal(fmt.Sprintf("POST %s: %v", url, err))
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		fatal(fmt.Sprintf("POST %s: status %d", url, resp.StatusCode))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			fatal(fmt.Sprintf("POST %s: decode: %v", url, err))
		}
	}
}

func fatal(msg string) {
	fmt.Println("FAIL:", msg)
	os.Exit(1)
}
