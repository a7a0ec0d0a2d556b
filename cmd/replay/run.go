package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"cognitive-router/config"
	"cognitive-router/internal/bootstrap"
	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/router"
	"cognitive-router/pkg/log"
)

// turnLine is one recorded turn in a JSONL transcript.
type turnLine struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Timezone  string `json:"timezone,omitempty"`
}

// resultLine pairs a turn's line number with its outcome.
type resultLine struct {
	Line   int                   `json:"line"`
	Result *router.RoutingResult `json:"result,omitempty"`
	Error  string                `json:"error,omitempty"`
}

func newRunCmd(configPath *string) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "run <transcript.jsonl>",
		Short: "Route every turn of a JSONL transcript",
		Example: `  replay run testdata/conversations.jsonl
  replay run -c config/config.yaml -j 8 turns.jsonl > results.jsonl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open transcript: %w", err)
			}
			defer f.Close()

			turns, err := readTurns(f)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := log.Init(log.ZapConfig{
				Level:    cfg.Logger.Level,
				Mode:     cfg.Logger.Mode,
				Encoding: log.EncodingJSON,
			})
			app, err := bootstrap.Build(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()

			results, err := replay(ctx, app.Router, turns, concurrency)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().IntVarP(&concurrency, "jobs", "j", 4, "conversations replayed in parallel")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

// readTurns parses a JSONL transcript; blank lines are skipped.
func readTurns(r io.Reader) ([]turnLine, error) {
	var turns []turnLine
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; sc.Scan(); n++ {
		raw := sc.Bytes()
		if len(raw) == 0 {
			turns = append(turns, turnLine{})
			continue
		}
		var t turnLine
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		turns = append(turns, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return turns, nil
}

// replay routes turns in file order within each conversation; distinct
// conversations run concurrently. Results keep input order. A failing turn
// is reported in its result line and does not stop the replay.
func replay(ctx context.Context, uc router.UseCase, turns []turnLine, concurrency int) ([]resultLine, error) {
	var order []dialogue.Key
	sessions := make(map[dialogue.Key][]int)
	for i, t := range turns {
		if t.Message == "" && t.UserID == "" {
			continue
		}
		key := dialogue.Key{UserID: t.UserID, SessionID: t.SessionID}
		if _, ok := sessions[key]; !ok {
			order = append(order, key)
		}
		sessions[key] = append(sessions[key], i)
	}

	results := make([]resultLine, len(turns))
	for i := range results {
		results[i].Line = i + 1
	}

	g, gCtx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for _, key := range order {
		indexes := sessions[key]
		g.Go(func() error {
			for _, i := range indexes {
				if err := gCtx.Err(); err != nil {
					return err
				}
				t := turns[i]
				res, err := uc.Route(gCtx, router.RouteInput{
					UserID:    t.UserID,
					SessionID: t.SessionID,
					Message:   t.Message,
					Timezone:  t.Timezone,
				})
				if err != nil {
					results[i].Error = err.Error()
					continue
				}
				results[i].Result = &res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := results[:0]
	for _, r := range results {
		if r.Result != nil || r.Error != "" {
			out = append(out, r)
		}
	}
	return out, nil
}

func writeResults(w io.Writer, results []resultLine) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}
