// Command evaluate-predictions regenerates each prediction's driver
// file, runs it through the Execution Harness worker pool, classifies
// the result, and writes per-language result/runtime JSONL files,
// resuming from any prior run found in the output directory, per
// SPEC_FULL.md §9.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google-research/babelcode-go/internal/cli"
	"github.com/google-research/babelcode-go/internal/codegen"
	"github.com/google-research/babelcode-go/internal/exec"
	"github.com/google-research/babelcode-go/internal/jsonutil"
	"github.com/google-research/babelcode-go/internal/langpack"
	"github.com/google-research/babelcode-go/internal/model"
	"github.com/google-research/babelcode-go/internal/results"
	"github.com/google-research/babelcode-go/internal/runconfig"
)

func main() {
	var (
		questionsPath   = flag.String("questions", "", "path to questions JSONL file")
		predictionsPath = flag.String("predictions", "", "path to predictions JSONL file")
		outDir          = flag.String("out", "out", "output directory for driver trees and result files")
		workers         = flag.Int("workers", 4, "number of concurrent execution workers")
		timeout         = flag.Duration("timeout", 10*time.Second, "per-command timeout")
		configPath      = flag.String("config", "", "optional YAML run-config file")
		defaultLang     = flag.String("default-lang", "", "language assumed for predictions omitting \"language\"")
	)
	flag.Parse()

	if *questionsPath == "" || *predictionsPath == "" {
		cli.Fail("missing required flags: -questions and -predictions")
		flag.Usage()
		os.Exit(2)
	}

	if *configPath != "" {
		cfg, err := runconfig.Load(*configPath)
		if err != nil {
			cli.Fail("loading config: %v", err)
			os.Exit(1)
		}
		// A flag given on the command line wins over the file's value.
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		if cfg.Workers > 0 && !explicit["workers"] {
			*workers = cfg.Workers
		}
		if cfg.TimeoutSeconds > 0 && !explicit["timeout"] {
			*timeout = cfg.Timeout()
		}
		if cfg.OutputDir != "" && !explicit["out"] {
			*outDir = cfg.OutputDir
		}
	}

	if err := exec.CheckExecutionAllowed(); err != nil {
		cli.Fail("%v", err)
		os.Exit(1)
	}

	if err := codegen.LoadTemplates(); err != nil {
		cli.Fail("loading templates: %v", err)
		os.Exit(1)
	}

	questions, err := readQuestions(*questionsPath)
	if err != nil {
		cli.Fail("reading questions: %v", err)
		os.Exit(1)
	}
	questionsByID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		questionsByID[q.ID] = q
	}
	cli.Info("loaded %d questions from %s", len(questions), *questionsPath)

	predictions, err := readPredictions(*predictionsPath, *defaultLang)
	if err != nil {
		cli.Fail("reading predictions: %v", err)
		os.Exit(1)
	}
	cli.Info("loaded %d predictions from %s", len(predictions), *predictionsPath)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		cli.Fail("creating output dir: %v", err)
		os.Exit(1)
	}

	byLang := make(map[string][]model.Prediction)
	for _, p := range predictions {
		byLang[p.Lang] = append(byLang[p.Lang], p)
	}

	for lang, preds := range byLang {
		if err := evaluateLanguage(lang, preds, questionsByID, *outDir, *workers, *timeout); err != nil {
			cli.Fail("%s: %v", lang, err)
		}
	}
}

func evaluateLanguage(lang string, preds []model.Prediction, questionsByID map[string]model.Question, outDir string, workers int, timeout time.Duration) error {
	pack, err := langpack.Get(lang)
	if err != nil {
		return fmt.Errorf("unregistered language: %w", err)
	}
	if pack.Commands == nil {
		return fmt.Errorf("language %s has no run commands configured", lang)
	}

	resultsPath := filepath.Join(outDir, lang+"_execution_results.jsonl")
	trackingPath := filepath.Join(outDir, lang+"_runtime_tracking.jsonl")

	prior, err := exec.LoadJournal(resultsPath)
	if err != nil {
		return fmt.Errorf("loading prior results: %w", err)
	}

	driverCache := make(map[string]string, len(preds))
	var jobs []exec.Job
	var skipped int
	for _, pred := range preds {
		key := pred.QID + ":" + pred.ID
		if _, done := prior[key]; done {
			skipped++
			continue
		}

		q, ok := questionsByID[pred.QID]
		if !ok {
			cli.Warn("prediction %s references unknown question %s, skipping", pred.ID, pred.QID)
			continue
		}

		driver, ok := driverCache[q.ID]
		if !ok {
			rendered, err := codegen.GenerateDriver(pack, q)
			if err != nil {
				cli.Warn("generating driver for %s: %v", q.ID, err)
				continue
			}
			driver = rendered
			driverCache[q.ID] = driver
		}

		placed, err := codegen.SetupPredictionDir(outDir, pack, driver, pred)
		if err != nil {
			cli.Warn("writing driver for %s/%s: %v", pred.QID, pred.ID, err)
			continue
		}

		fileName := filepath.Base(placed.FilePath)
		commands := pack.Commands(fileName)
		for i := range commands {
			commands[i].Timeout = timeout
		}

		jobs = append(jobs, exec.Job{
			QID:          pred.QID,
			PredictionID: pred.ID,
			Commands:     commands,
			WorkDir:      filepath.Dir(placed.FilePath),
		})
	}

	if skipped > 0 {
		cli.Info("%s: resuming, skipping %d already-completed predictions", lang, skipped)
	}
	if len(jobs) == 0 {
		cli.Success("%s: nothing to run", lang)
		return nil
	}

	pool := exec.NewPool(workers)
	pool.OnProgress = func(completed, total int) {
		cli.Progress(completed, total, lang)
	}
	outcomes := pool.Run(jobs)

	journal, err := exec.OpenJournal(resultsPath)
	if err != nil {
		return fmt.Errorf("opening results journal: %w", err)
	}
	defer journal.Close()

	trackingFile, err := os.Create(trackingPath)
	if err != nil {
		return fmt.Errorf("creating runtime tracking file: %w", err)
	}
	defer trackingFile.Close()
	trackingWriter := bufio.NewWriter(trackingFile)
	defer trackingWriter.Flush()

	byQID := make(map[string][]results.PredictionResult)
	for _, o := range outcomes {
		if o.Err != nil {
			cli.Warn("%s/%s: %v", o.QID, o.PredictionID, o.Err)
			continue
		}
		if err := journal.Append(o.QID, o.PredictionID, o.Result); err != nil {
			cli.Warn("journaling %s/%s: %v", o.QID, o.PredictionID, err)
		}

		q := questionsByID[o.QID]
		ids := make([]string, len(q.TestCases))
		for i, tc := range q.TestCases {
			ids[i] = tc.ID
		}
		pr := results.Classify(o.Result, ids)
		byQID[o.QID] = append(byQID[o.QID], pr)

		line, err := jsonutil.MarshalDeterministic(pr)
		if err == nil {
			trackingWriter.Write(line)
			trackingWriter.WriteString("\n")
		}
	}

	passed, total := 0, 0
	for qid, per := range byQID {
		qr := results.Aggregate(qid, per, len(per))
		total += qr.Total + qr.Missing
		passed += qr.Counts[results.Passed]
	}
	cli.Success("%s: %d/%d passed across %d jobs this run", lang, passed, total, len(jobs))
	return nil
}

func readQuestions(path string) ([]model.Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []model.Question
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		q, err := model.ParseQuestionJSON(line)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, scanner.Err()
}

func readPredictions(path, defaultLang string) ([]model.Prediction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []model.Prediction
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		p, err := model.ParsePredictionJSON(line, defaultLang)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, scanner.Err()
}
