package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pangea-client/core"
	"pangea-client/internal/logging"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pangea-status",
	Short: "Stream status records from a pangea-client server and serve the latest one over HTTP",
	RunE:  runStatus,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("endpoint", "", "server host, defaults to PANGEA_URL")
	flags.Bool("insecure", false, "use ws:// instead of wss://")
	flags.String("addr", ":8090", "address the debug HTTP server listens on")

	_ = viper.BindPFlag("endpoint", flags.Lookup("endpoint"))
	_ = viper.BindPFlag("insecure", flags.Lookup("insecure"))
	_ = viper.BindPFlag("addr", flags.Lookup("addr"))
	viper.SetEnvPrefix("pangea")
	viper.AutomaticEnv()

	_ = godotenv.Load()
}

func runStatus(cmd *cobra.Command, args []string) error {
	logger := logging.New()

	builder := core.NewClientBuilder()
	if endpoint := viper.GetString("endpoint"); endpoint != "" {
		builder = builder.Endpoint(endpoint)
	}
	if viper.GetBool("insecure") {
		builder = builder.Secure(false)
	}
	builder = builder.Logger(logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	client, err := builder.Build(ctx)
	if err != nil {
		return fmt.Errorf("pangea-status: connect: %w", err)
	}

	statuses, err := client.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("pangea-status: subscribe: %w", err)
	}

	store := &latestStatus{}
	go func() {
		for msg := range statuses {
			if msg.Err != nil {
				logger.WithError(msg.Err).Warn("status decode error")
				continue
			}
			store.set(msg.Value)
			logger.WithFields(map[string]any{
				"chain":   msg.Value.ChainName,
				"service": msg.Value.Service,
				"height":  msg.Value.LatestBlockHeight,
			}).Info("status update")
		}
	}()

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if !client.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		s, ok := store.get()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(s)
	})

	addr := viper.GetString("addr")
	logger.WithField("addr", addr).Info("pangea-status debug server listening")

	server := &http.Server{Addr: addr, Handler: router, ReadHeaderTimeout: 5 * time.Second}
	return server.ListenAndServe()
}

type latestStatus struct {
	mu    sync.RWMutex
	value core.Status
	has   bool
}

func (s *latestStatus) set(v core.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	s.has = true
}

func (s *latestStatus) get() (core.Status, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.has
}
