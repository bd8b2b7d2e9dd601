package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "banking-cli",
		Short: "FuelEU banking CLI tool",
		Long:  `A command line interface for the FuelEU compliance-balance banking API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the banking API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	bankCmd := &cobra.Command{
		Use:   "bank <shipId> <year> <amount>",
		Short: "Bank surplus compliance balance for a ship-year",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			postOperation("/api/v1/banking/bank", args[0], args[1], args[2])
		},
	}

	applyCmd := &cobra.Command{
		Use:   "apply <shipId> <year> <amount>",
		Short: "Apply banked surplus against a ship-year's deficit",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			postOperation("/api/v1/banking/apply", args[0], args[1], args[2])
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status <shipId> <year>",
		Short: "Show the banking status report for a ship-year",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			get(fmt.Sprintf("/api/v1/banking/status/%s/%s", args[0], args[1]))
		},
	}

	historyCmd := &cobra.Command{
		Use:   "history <shipId>",
		Short: "Show a ship's full banking history",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/banking/history/" + args[0])
		},
	}

	recordsCmd := &cobra.Command{
		Use:   "records",
		Short: "List every ledger entry",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/banking/records")
		},
	}

	rootCmd.AddCommand(bankCmd, applyCmd, statusCmd, historyCmd, recordsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func postOperation(path, shipID, year, amount string) {
	payload := fmt.Sprintf(`{"shipId":%q,"year":%s,"amountGco2eq":%q}`, shipID, year, amount)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewBufferString(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func get(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
	} else {
		fmt.Println(pretty.String())
	}

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\n", resp.StatusCode)
		os.Exit(1)
	}
}
