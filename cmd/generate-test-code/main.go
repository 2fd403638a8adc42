// Command generate-test-code reads a questions JSONL file and a
// predictions JSONL file and writes one driver source file per
// (question, prediction) into an output directory tree, plus a
// generation-failures JSONL file, per SPEC_FULL.md §9.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"os"

	"github.com/google-research/babelcode-go/internal/cli"
	"github.com/google-research/babelcode-go/internal/codegen"
	"github.com/google-research/babelcode-go/internal/langpack"
	"github.com/google-research/babelcode-go/internal/model"
	"github.com/google-research/babelcode-go/internal/runconfig"
)

func main() {
	var (
		questionsPath   = flag.String("questions", "", "path to questions JSONL file")
		predictionsPath = flag.String("predictions", "", "path to predictions JSONL file")
		outDir          = flag.String("out", "out", "output directory for generated driver trees")
		configPath      = flag.String("config", "", "optional YAML run-config file")
		defaultLang     = flag.String("default-lang", "", "language assumed for predictions omitting \"language\"")
	)
	_ = flag.Int("workers", 0, "unused by this command, accepted for flag symmetry with evaluate-predictions")
	_ = flag.Duration("timeout", 0, "unused by this command, accepted for flag symmetry with evaluate-predictions")
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
		if cfg.OutputDir != "" && !explicit["out"] {
			*outDir = cfg.OutputDir
		}
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
	cli.Info("loaded %d questions from %s", len(questions), *questionsPath)

	predictions, err := readPredictions(*predictionsPath, *defaultLang)
	if err != nil {
		cli.Fail("reading predictions: %v", err)
		os.Exit(1)
	}
	cli.Info("loaded %d predictions from %s", len(predictions), *predictionsPath)

	questionsByID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		questionsByID[q.ID] = q
	}

	predictionsByLang := make(map[string][]model.Prediction)
	for _, p := range predictions {
		predictionsByLang[p.Lang] = append(predictionsByLang[p.Lang], p)
	}

	failuresPath := *outDir + "/generation-failures.jsonl"
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		cli.Fail("creating output dir: %v", err)
		os.Exit(1)
	}
	failureFile, err := os.Create(failuresPath)
	if err != nil {
		cli.Fail("creating failure log: %v", err)
		os.Exit(1)
	}
	defer failureFile.Close()
	failureEnc := json.NewEncoder(failureFile)

	totalWritten := 0
	for lang, preds := range predictionsByLang {
		pack, err := langpack.Get(lang)
		if err != nil {
			cli.Warn("skipping %d predictions for unregistered language %q: %v", len(preds), lang, err)
			continue
		}

		driverCache := make(map[string]string, len(preds))
		for _, pred := range preds {
			q, ok := questionsByID[pred.QID]
			if !ok {
				_ = failureEnc.Encode(map[string]string{"qid": pred.QID, "prediction_id": pred.ID, "error": "unknown question id"})
				continue
			}
			driver, ok := driverCache[q.ID]
			if !ok {
				rendered, err := codegen.GenerateDriver(pack, q)
				if err != nil {
					_ = failureEnc.Encode(map[string]string{"qid": q.ID, "error": err.Error()})
					continue
				}
				driver = rendered
				driverCache[q.ID] = driver
			}

			if _, err := codegen.SetupPredictionDir(*outDir, pack, driver, pred); err != nil {
				_ = failureEnc.Encode(map[string]string{"qid": pred.QID, "prediction_id": pred.ID, "error": err.Error()})
				continue
			}
			totalWritten++
		}
	}

	cli.Success("wrote %d driver files to %s", totalWritten, *outDir)
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
