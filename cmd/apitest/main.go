package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/microblog/blogsvc/internal/apitest"
)

func main() {
	var serviceURL string
	var timeoutSeconds int

	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&serviceURL, "url", "", "base URL of the blog service under test")
	fs.IntVar(&timeoutSeconds, "timeout", 10, "per-request timeout in seconds")

	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters: %s\n", err)
		os.Exit(1)
	}
	if serviceURL == "" {
		fmt.Fprintln(os.Stderr, "-url is required")
		fs.Usage()
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second}

	fmt.Printf("Running blog-post contract suite against %s\n\n", serviceURL)
	results := apitest.RunSuite(serviceURL, httpClient)
	apitest.PrintResults(os.Stdout, results)
	if !results.OK() {
		os.Exit(1)
	}
}
