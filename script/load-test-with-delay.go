package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// envelope is the body every API response carries
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Account is a registered user the load is spread across
type Account struct {
	Email    string
	Password string
	Token    string

	startBalance int64
	credited     int64
	debited      int64
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	AccountStats       map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one kind of ledger request
type Scenario struct {
	Name        string
	TopUp       int64  // amount credited when ServiceCode is empty
	ServiceCode string // paid service otherwise
	Tariff      int64
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	accountsStr := flag.String("a", "loadtest1@example.com,loadtest2@example.com", "Comma-separated list of account emails")
	password := flag.String("p", "loadtest123", "Password shared by every account")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	var accounts []*Account
	for _, email := range strings.Split(*accountsStr, ",") {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}
		acc := &Account{Email: email, Password: *password}
		if err := prepare(client, *baseURL, acc); err != nil {
			fmt.Printf("Failed to prepare %s: %v\n", email, err)
			os.Exit(1)
		}
		accounts = append(accounts, acc)
	}
	if len(accounts) == 0 {
		fmt.Println("No accounts given")
		os.Exit(1)
	}

	scenarios := []Scenario{
		{Name: "Top Up Small", TopUp: 10000},
		{Name: "Top Up Large", TopUp: 100000},
		{Name: "Pay PLN", ServiceCode: "PLN", Tariff: 10000},
		{Name: "Pay PULSA", ServiceCode: "PULSA", Tariff: 40000},
		{Name: "Pay VOUCHER_GAME", ServiceCode: "VOUCHER_GAME", Tariff: 100000},
	}

	fmt.Printf("Load testing API across %d accounts\n", len(accounts))
	fmt.Printf("Scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		AccountStats:    make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, accounts, scenarios, jobs, results, stats)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
	if !verifyBalances(client, *baseURL, accounts) {
		os.Exit(1)
	}
}

// prepare registers the account when needed, logs in and records the opening balance
func prepare(client *http.Client, baseURL string, acc *Account) error {
	names := strings.SplitN(acc.Email, "@", 2)
	env, _, err := call(client, http.MethodPost, baseURL+"/registration", "", map[string]any{
		"email":      acc.Email,
		"password":   acc.Password,
		"first_name": names[0],
		"last_name":  "Load",
	})
	if err != nil {
		return err
	}
	// 101 means the account exists from an earlier run
	if env.Status != 0 && env.Status != 101 {
		return fmt.Errorf("registration: %s", env.Message)
	}

	env, _, err = call(client, http.MethodPost, baseURL+"/login", "", map[string]any{
		"email":    acc.Email,
		"password": acc.Password,
	})
	if err != nil {
		return err
	}
	var token struct {
		Token string `json:"token"`
	}
	if env.Status != 0 || json.Unmarshal(env.Data, &token) != nil || token.Token == "" {
		return fmt.Errorf("login: %s", env.Message)
	}
	acc.Token = token.Token

	acc.startBalance, err = balance(client, baseURL, acc)
	return err
}

func balance(client *http.Client, baseURL string, acc *Account) (int64, error) {
	env, _, err := call(client, http.MethodGet, baseURL+"/balance", acc.Token, nil)
	if err != nil {
		return 0, err
	}
	var body struct {
		Balance int64 `json:"balance"`
	}
	if env.Status != 0 {
		return 0, errors.New(env.Message)
	}
	if err := json.Unmarshal(env.Data, &body); err != nil {
		return 0, err
	}
	return body.Balance, nil
}

func call(client *http.Client, method, url, token string, payload any) (*envelope, int, error) {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return nil, 0, err
		}
	}

	req, err := http.NewRequest(method, url, &body)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("HTTP status code %d: %w", resp.StatusCode, err)
	}
	return &env, resp.StatusCode, nil
}

func worker(client *http.Client, baseURL string, delayMs int, accounts []*Account,
	scenarios []Scenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		acc := accounts[rand.Intn(len(accounts))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.AccountStats[acc.Email]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		url, payload := baseURL+"/topup", map[string]any{"top_up_amount": scenario.TopUp}
		if scenario.ServiceCode != "" {
			url, payload = baseURL+"/transaction", map[string]any{"service_code": scenario.ServiceCode}
		}

		startTime := time.Now()
		env, statusCode, err := call(client, http.MethodPost, url, acc.Token, payload)
		result := TestResult{ResponseTime: time.Since(startTime), StatusCode: statusCode, Error: err}

		switch {
		case err != nil:
		case env.Status == 0:
			result.Success = true
			stats.Lock.Lock()
			if scenario.ServiceCode != "" {
				acc.debited += scenario.Tariff
			} else {
				acc.credited += scenario.TopUp
			}
			stats.Lock.Unlock()
		case env.Status == 105:
			// Refused payments are expected once a balance runs dry
			result.Success = true
		default:
			result.Error = fmt.Errorf("status %d: %s", env.Status, env.Message)
		}

		results <- result
	}
}

// verifyBalances checks that no credit or debit was lost under concurrency
func verifyBalances(client *http.Client, baseURL string, accounts []*Account) bool {
	fmt.Println("\n----------------- BALANCE CHECK -----------------")
	ok := true
	for _, acc := range accounts {
		got, err := balance(client, baseURL, acc)
		if err != nil {
			fmt.Printf("%s: failed to read balance: %v\n", acc.Email, err)
			ok = false
			continue
		}
		want := acc.startBalance + acc.credited - acc.debited
		if got != want {
			fmt.Printf("❌ %s: balance %d, expected %d\n", acc.Email, got, want)
			ok = false
			continue
		}
		fmt.Printf("✅ %s: balance %d matches\n", acc.Email, got)
	}
	return ok
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	var p50, p90, p95, p99 time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(n)

		sorted := append([]time.Duration(nil), stats.ResponseTimes...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		p50 = sorted[n*50/100]
		p90 = sorted[n*90/100]
		p95 = sorted[n*95/100]
		p99 = sorted[n*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (successful requests / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all requests were successful)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- ACCOUNT DISTRIBUTION -----------------")
	for email, count := range stats.AccountStats {
		fmt.Printf("%-30s: %d requests\n", email, count)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-20s: %d requests\n", scenario, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
}
