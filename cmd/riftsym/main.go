package main

// #region imports
import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/obinexus/riftplayer/go-engine/internal/config"
	"github.com/obinexus/riftplayer/go-engine/internal/interpreter"
	"github.com/obinexus/riftplayer/go-engine/internal/journal"
	"github.com/obinexus/riftplayer/go-engine/internal/vtt"
)

// #endregion

// #region main

func main() {
	configPath := flag.String("config", "", "path to engine config YAML")
	dbPath := flag.String("db", "", "path to interpretation journal (overrides config)")
	text := flag.String("text", "", "interpret a single text fragment")
	replayPath := flag.String("replay", "", "interpret a transcript file, one fragment per line")
	export := flag.Bool("export", false, "print the WebVTT transcript")
	table := flag.Bool("table", false, "print the retained symbol table")
	jsonOut := flag.Bool("json", false, "output results as JSON")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.Journal.Path = *dbPath
	}

	if *text == "" && *replayPath == "" && !*export {
		fmt.Fprintln(os.Stderr, "usage: riftsym [--config file] [--db file] (--text fragment | --replay file | --export) [--table] [--json]")
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger, *text, *replayPath, *export, *table, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

func run(cfg config.Config, logger *zap.Logger, text, replayPath string, export, table, jsonOut bool) error {
	interp := interpreter.New(interpreter.Config{
		StreamCapacity: cfg.Engine.StreamCapacity,
		CaptionWidth:   cfg.Engine.CaptionWidth,
	}, logger)

	var store *journal.Store
	if cfg.Journal.Path != "" {
		var err error
		store, err = journal.NewStore(cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	if text != "" {
		if err := interpretOne(interp, store, text, jsonOut); err != nil {
			return err
		}
	}

	if replayPath != "" {
		if err := replayFile(interp, store, replayPath, jsonOut); err != nil {
			return err
		}
	}

	if table {
		if err := printTable(interp, jsonOut); err != nil {
			return err
		}
	}

	if export {
		return printTranscript(interp, store, cfg)
	}
	return nil
}

// #endregion run

// #region interpret-one

func interpretOne(interp *interpreter.Interpreter, store *journal.Store, text string, jsonOut bool) error {
	res := interp.Interpret(text)
	if store != nil {
		if err := store.Append(res); err != nil {
			return err
		}
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Printf("frame %d  %s  conf=%.3f\n", res.FrameIndex, res.DominantState, res.Confidence)
	fmt.Println(res.SemanticLabel)
	fmt.Println(res.Caption)
	return nil
}

// #endregion interpret-one

// #region replay

// replayFile feeds a transcript through the interpreter line by line,
// skipping blank lines.
func replayFile(interp *interpreter.Interpreter, store *journal.Store, path string, jsonOut bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := interpretOne(interp, store, line, jsonOut); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	return nil
}

// #endregion replay

// #region table

func printTable(interp *interpreter.Interpreter, jsonOut bool) error {
	snaps := interp.CurrentSymbolTable()
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snaps)
	}
	for _, s := range snaps {
		fmt.Printf("%-20s %-12s %-6s %-10s conf=%.3f rwx=%s\n",
			s.Key, s.Category, s.TriState, s.State, s.Confidence, s.Perm)
	}
	return nil
}

// #endregion table

// #region export

// printTranscript renders the WebVTT transcript: from the journal when
// one is configured, otherwise from this process's interpretation log.
func printTranscript(interp *interpreter.Interpreter, store *journal.Store, cfg config.Config) error {
	dur := cfg.Engine.FrameDuration()
	if store != nil {
		entries, err := store.Entries()
		if err != nil {
			return err
		}
		fmt.Print(vtt.Document(vtt.Cues(entries, dur)))
		return nil
	}
	fmt.Print(interp.ExportVTT(dur))
	return nil
}

// #endregion export

// #region logger

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

// #endregion logger
