package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"
)

// Product is the catalog payload
type Product struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// ProductResponse is the API response for a created product
type ProductResponse struct {
	ID    uint64 `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// TransactionItem is one line of a transaction payload
type TransactionItem struct {
	ProductID uint64 `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// Transaction is the ledger payload
type Transaction struct {
	Items []TransactionItem `json:"items"`
}

// ErrorResponse is the API error shape
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var demoCatalog = []Product{
	{Code: "KOPI-SCH", Name: "Kopi Sachet", Price: 1500},
	{Code: "TEH-BTL", Name: "Teh Botol", Price: 4000},
	{Code: "MIE-GRG", Name: "Mie Goreng Instan", Price: 3500},
	{Code: "RTI-TWR", Name: "Roti Tawar", Price: 14000},
	{Code: "GLA-PSR", Name: "Gula Pasir 1kg", Price: 17500},
	{Code: "MNY-GRG", Name: "Minyak Goreng 1L", Price: 19000},
	{Code: "SBN-MND", Name: "Sabun Mandi", Price: 4500},
	{Code: "AIR-GLN", Name: "Air Mineral Galon", Price: 21000},
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	transactions := flag.Int("n", 10, "Number of demo transactions to record")
	delayMs := flag.Int("delay", 50, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Printf("Seeding catalog at %s\n", *baseURL)

	productIDs := make([]uint64, 0, len(demoCatalog))
	for _, product := range demoCatalog {
		id, err := createProduct(client, *baseURL, product)
		if err != nil {
			fmt.Printf("  %-10s SKIP (%v)\n", product.Code, err)
			continue
		}
		fmt.Printf("  %-10s id=%d price=%d\n", product.Code, id, product.Price)
		productIDs = append(productIDs, id)
		time.Sleep(time.Duration(*delayMs) * time.Millisecond)
	}

	if len(productIDs) == 0 {
		fmt.Println("No products available, aborting")
		os.Exit(1)
	}

	fmt.Printf("Recording %d demo transactions\n", *transactions)

	for i := 0; i < *transactions; i++ {
		tx := randomTransaction(productIDs)
		if err := createTransaction(client, *baseURL, tx); err != nil {
			fmt.Printf("  transaction %d FAILED (%v)\n", i+1, err)
			continue
		}
		fmt.Printf("  transaction %d recorded with %d items\n", i+1, len(tx.Items))
		time.Sleep(time.Duration(*delayMs) * time.Millisecond)
	}

	fmt.Println("Done")
}

// randomTransaction picks 1-4 distinct products with small quantities
func randomTransaction(productIDs []uint64) Transaction {
	count := 1 + rand.Intn(4)
	if count > len(productIDs) {
		count = len(productIDs)
	}

	picked := rand.Perm(len(productIDs))[:count]

	items := make([]TransactionItem, 0, count)
	for _, idx := range picked {
		items = append(items, TransactionItem{
			ProductID: productIDs[idx],
			Quantity:  int64(1 + rand.Intn(5)),
		})
	}

	return Transaction{Items: items}
}

func createProduct(client *http.Client, baseURL string, product Product) (uint64, error) {
	body, err := json.Marshal(product)
	if err != nil {
		return 0, err
	}

	resp, err := client.Post(baseURL+"/products", "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var apiErr ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
			return 0, fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return 0, fmt.Errorf("status %d", resp.StatusCode)
	}

	var created ProductResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return 0, err
	}

	return created.ID, nil
}

func createTransaction(client *http.Client, baseURL string, tx Transaction) error {
	body, err := json.Marshal(tx)
	if err != nil {
		return err
	}

	resp, err := client.Post(baseURL+"/transactions", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var apiErr ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
			return fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	return nil
}
