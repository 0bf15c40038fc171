package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.temporal.io/api/enums/v1"
	workflowpb "go.temporal.io/api/workflow/v1"
	"go.temporal.io/api/workflowservice/v1"
	"go.temporal.io/sdk/client"
)

const (
	defaultTemporalHost = "localhost:7233"
	defaultNamespace    = "default"
	defaultWorkflowType = "DeliverReply"
)

type Config struct {
	TemporalHost string
	Namespace    string
	WorkflowType string
	Since        time.Duration // Window of workflow start times to report on
	MaxWorkflows int           // Maximum number of workflows to collect (0 = unlimited)
	PageSize     int           // Page size for Temporal queries
	QueryTimeout time.Duration // Timeout for each Temporal query
	OutputFile   string        // Output markdown file path (optional)
	Debug        bool
}

// DeliveryStats aggregates reply delivery workflow executions
type DeliveryStats struct {
	WindowStart  time.Time
	WindowEnd    time.Time
	Total        int
	ByStatus     map[enums.WorkflowExecutionStatus]int
	Durations    []time.Duration // Closed executions only
	Retried      int // Workflow IDs run more than once in the window
	SlowestID    string
	SlowestTaken time.Duration
	runs         map[string]int
}

func newDeliveryStats(start, end time.Time) *DeliveryStats {
	return &DeliveryStats{
		WindowStart: start,
		WindowEnd:   end,
		ByStatus:    make(map[enums.WorkflowExecutionStatus]int),
		runs:        make(map[string]int),
	}
}

// add records one workflow execution
func (s *DeliveryStats) add(exec *workflowpb.WorkflowExecutionInfo) {
	s.Total++
	s.ByStatus[exec.GetStatus()]++

	// A failed delivery is started again under the same workflow ID
	workflowID := exec.GetExecution().GetWorkflowId()
	s.runs[workflowID]++
	if s.runs[workflowID] == 2 {
		s.Retried++
	}

	if exec.GetCloseTime() == nil || exec.GetStartTime() == nil {
		return
	}
	taken := exec.GetCloseTime().AsTime().Sub(exec.GetStartTime().AsTime())
	s.Durations = append(s.Durations, taken)
	if taken > s.SlowestTaken {
		s.SlowestTaken = taken
		s.SlowestID = workflowID
	}
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		fmt.Printf("Error creating Temporal client: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	fmt.Printf("Connected to Temporal at %s (namespace: %s)\n", cfg.TemporalHost, cfg.Namespace)

	end := time.Now()
	stats, err := collectDeliveryStats(ctx, c, cfg, end.Add(-cfg.Since), end)
	if err != nil {
		fmt.Printf("Error collecting stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("REPLY DELIVERY REPORT")
	fmt.Println(strings.Repeat("=", 80))
	printDeliveryStats(stats)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, stats); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
		}
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.TemporalHost, "temporal-host", defaultTemporalHost, "Temporal host address")
	flag.StringVar(&cfg.Namespace, "namespace", defaultNamespace, "Temporal namespace")
	flag.StringVar(&cfg.WorkflowType, "workflow-type", defaultWorkflowType, "Workflow type to report on")
	flag.DurationVar(&cfg.Since, "since", 24*time.Hour, "Report on workflows started within this window")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	flag.IntVar(&cfg.MaxWorkflows, "max-workflows", 10000, "Maximum workflows to collect (0 = unlimited)")
	flag.IntVar(&cfg.PageSize, "page-size", 1000, "Page size for Temporal queries (max: 1000)")
	flag.DurationVar(&cfg.QueryTimeout, "query-timeout", 30*time.Second, "Timeout for each Temporal query")
	configFile := flag.String("config", "", "Path to config file (optional)")

	flag.Parse()

	if cfg.PageSize <= 0 || cfg.PageSize > 1000 {
		cfg.PageSize = 1000
	}
	if cfg.Since <= 0 {
		cfg.Since = 24 * time.Hour
	}

	var fileCfg *FileConfig
	var err error
	if *configFile != "" {
		fileCfg, err = LoadConfig(*configFile)
	} else {
		fileCfg, err = loadDefaultConfig()
	}
	if err != nil {
		fmt.Printf("Warning: failed to load config file: %v\n", err)
	}
	applyFileConfig(cfg, fileCfg)

	return cfg
}

// applyFileConfig fills settings left at their flag defaults from the file
func applyFileConfig(cfg *Config, fileCfg *FileConfig) {
	if fileCfg == nil {
		return
	}
	if cfg.TemporalHost == defaultTemporalHost && fileCfg.TemporalHost != "" {
		cfg.TemporalHost = fileCfg.TemporalHost
	}
	if cfg.Namespace == defaultNamespace && fileCfg.Namespace != "" {
		cfg.Namespace = fileCfg.Namespace
	}
	if cfg.WorkflowType == defaultWorkflowType && fileCfg.WorkflowType != "" {
		cfg.WorkflowType = fileCfg.WorkflowType
	}
}

// buildQuery returns the visibility query selecting the workflows to report on
func buildQuery(workflowType string, start time.Time) string {
	return fmt.Sprintf("WorkflowType = '%s' AND StartTime >= '%s'", workflowType, start.UTC().Format(time.RFC3339))
}

// collectDeliveryStats pages through the visibility store and aggregates every execution
func collectDeliveryStats(ctx context.Context, c client.Client, cfg *Config, start, end time.Time) (*DeliveryStats, error) {
	stats := newDeliveryStats(start, end)
	query := buildQuery(cfg.WorkflowType, start)
	if cfg.Debug {
		fmt.Printf("[DEBUG] Query: %s\n", query)
	}

	var pageToken []byte
	for {
		queryCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
		resp, err := c.ListWorkflow(queryCtx, &workflowservice.ListWorkflowExecutionsRequest{
			Namespace:     cfg.Namespace,
			PageSize:      int32(cfg.PageSize), //nolint:gosec,G115
			Query:         query,
			NextPageToken: pageToken,
		})
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to list workflows: %w", err)
		}

		for _, exec := range resp.GetExecutions() {
			stats.add(exec)
			if cfg.MaxWorkflows > 0 && stats.Total >= cfg.MaxWorkflows {
				fmt.Printf("⚠️  Reached max workflows limit (%d), report is partial\n", cfg.MaxWorkflows)
				return stats, nil
			}
		}

		if cfg.Debug {
			fmt.Printf("[DEBUG] Collected %d workflows\n", stats.Total)
		}

		pageToken = resp.GetNextPageToken()
		if len(pageToken) == 0 {
			return stats, nil
		}
	}
}

// reportedStatuses lists the statuses shown in reports, in order
var reportedStatuses = []enums.WorkflowExecutionStatus{
	enums.WORKFLOW_EXECUTION_STATUS_COMPLETED,
	enums.WORKFLOW_EXECUTION_STATUS_FAILED,
	enums.WORKFLOW_EXECUTION_STATUS_RUNNING,
	enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT,
	enums.WORKFLOW_EXECUTION_STATUS_TERMINATED,
	enums.WORKFLOW_EXECUTION_STATUS_CANCELED,
}

func printDeliveryStats(stats *DeliveryStats) {
	window := stats.WindowEnd.Sub(stats.WindowStart)
	fmt.Printf("Window:      %s → %s (%s)\n",
		stats.WindowStart.Format(time.RFC3339), stats.WindowEnd.Format(time.RFC3339), formatDuration(window))
	fmt.Printf("Deliveries:  %d (%s)\n", stats.Total, formatRate(stats.Total, window))
	fmt.Printf("Retried:     %d\n", stats.Retried)
	fmt.Println(strings.Repeat("-", 80))

	for _, status := range reportedStatuses {
		count := stats.ByStatus[status]
		if count == 0 {
			continue
		}
		fmt.Printf("%-22s %6d  %s\n", formatStatus(status), count, percentageString(count, stats.Total))
	}

	if len(stats.Durations) > 0 {
		fmt.Println(strings.Repeat("-", 80))
		fmt.Printf("p50: %s  p95: %s  p99: %s\n",
			formatDuration(percentile(stats.Durations, 50)),
			formatDuration(percentile(stats.Durations, 95)),
			formatDuration(percentile(stats.Durations, 99)))
		fmt.Printf("Slowest: %s (%s)\n", stats.SlowestID, formatDuration(stats.SlowestTaken))
	}
	fmt.Println(strings.Repeat("-", 80))
}

func formatStatus(status enums.WorkflowExecutionStatus) string {
	switch status {
	case enums.WORKFLOW_EXECUTION_STATUS_RUNNING:
		return "🟡 RUNNING"
	case enums.WORKFLOW_EXECUTION_STATUS_COMPLETED:
		return "✅ COMPLETED"
	case enums.WORKFLOW_EXECUTION_STATUS_FAILED:
		return "❌ FAILED"
	case enums.WORKFLOW_EXECUTION_STATUS_CANCELED:
		return "🚫 CANCELED"
	case enums.WORKFLOW_EXECUTION_STATUS_TERMINATED:
		return "⛔ TERMINATED"
	case enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT:
		return "⏱️ TIMED_OUT"
	default:
		return status.String()
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// writeMarkdownReport writes a markdown report of the delivery stats
func writeMarkdownReport(path string, stats *DeliveryStats) error {
	file, err := os.Create(path) //nolint:gosec,G304
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	_, err = file.WriteString(renderMarkdown(stats))
	return err
}

func renderMarkdown(stats *DeliveryStats) string {
	var b strings.Builder
	b.WriteString("# Reply Delivery Report\n\n")
	fmt.Fprintf(&b, "- **Window:** %s → %s\n", stats.WindowStart.Format(time.RFC3339), stats.WindowEnd.Format(time.RFC3339))
	fmt.Fprintf(&b, "- **Deliveries:** %d\n", stats.Total)
	fmt.Fprintf(&b, "- **Retried:** %d\n\n", stats.Retried)

	b.WriteString("| Status | Count | Share |\n")
	b.WriteString("|--------|------:|------:|\n")
	for _, status := range reportedStatuses {
		count := stats.ByStatus[status]
		if count == 0 {
			continue
		}
		fmt.Fprintf(&b, "| %s | %d | %s |\n", formatStatus(status), count, percentageString(count, stats.Total))
	}

	if len(stats.Durations) > 0 {
		b.WriteString("\n## Latency\n\n")
		fmt.Fprintf(&b, "- p50: %s\n", formatDuration(percentile(stats.Durations, 50)))
		fmt.Fprintf(&b, "- p95: %s\n", formatDuration(percentile(stats.Durations, 95)))
		fmt.Fprintf(&b, "- p99: %s\n", formatDuration(percentile(stats.Durations, 99)))
		fmt.Fprintf(&b, "- slowest: `%s` (%s)\n", stats.SlowestID, formatDuration(stats.SlowestTaken))
	}
	return b.String()
}
