package main

import (
	"log"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/csvcat/internal/reader"
)

type Product struct {
	Name   string  `parquet:"name"`
	Brand  string  `parquet:"brand"`
	Price  int64   `parquet:"price"`
	Rating float64 `parquet:"rating"`
}

// Converts products.csv into products.parquet so both input paths can be
// tried by hand against the same data.
func main() {
	tbl, err := reader.ReadCSV("products.csv")
	if err != nil {
		log.Fatal(err)
	}

	products := make([]Product, 0, tbl.Len())
	for _, row := range tbl.Rows {
		price, err := strconv.ParseInt(row[2], 10, 64)
		if err != nil {
			log.Fatal(err)
		}
		rating, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			log.Fatal(err)
		}
		products = append(products, Product{Name: row[0], Brand: row[1], Price: price, Rating: rating})
	}

	file, err := os.Create("products.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Product](file)
	defer writer.Close()

	if _, err := writer.Write(products); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated products.parquet with %d products", len(products))
}
