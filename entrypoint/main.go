package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"io"
	"net/http"
	"os"
	"text2phenotype.com/reader/api"
	"text2phenotype.com/reader/lexicon"
	"text2phenotype.com/reader/logger"
	"text2phenotype.com/reader/pipeline"
	"text2phenotype.com/reader/reader"
	"text2phenotype.com/reader/s3client"
	"text2phenotype.com/reader/types"
	"text2phenotype.com/reader/worker"
	"time"
)

type Config struct {
	ConfigPath     string   `envconfig:"READER_CONFIG_PATH" default:""`
	LexiconDir     string   `envconfig:"READER_LEXICON_DIR" default:""`
	RestAPIActive  bool     `envconfig:"READER_REST_API_ACTIVE" default:"false"`
	RestAPIPort    string   `envconfig:"READER_REST_API_PORT" default:"10000"`
	AllowedOrigins []string `envconfig:"READER_REST_API_ALLOWED_ORIGINS" default:"*"`
	WorkerActive   bool     `envconfig:"READER_WORKER_ACTIVE" default:"true"`
}

type UI struct {
	Out io.Writer
	Err io.Writer
}

const pipelineStartMaxRetries = 5

func main() {
	// a missing .env file is fine, the environment may be set already
	_ = godotenv.Load()
	logger.SetupLogging()
	readerLogger := logger.NewLogger("Main")
	fatalErrLogger := readerLogger.Fatal().Caller()

	solve := flag.Bool("solve", false, "answer one question about one sentence and exit")
	sentence := flag.String("sentence", "", "sentence to read in -solve mode")
	question := flag.String("question", "", "question to answer in -solve mode")
	repl := flag.Bool("repl", false, "start an interactive reading session")
	batch := flag.String("batch", "", "answer every {sentence, questions} line of a JSON lines file and exit")
	flag.Parse()

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fatalErrLogger.Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	cfg, err := loadConfiguration(config)
	if err != nil {
		fatalErrLogger.Err(err).Msg("Failed to load reader configuration")
		os.Exit(1)
	}
	lex, err := loadLexicon(cfg, &readerLogger)
	if err != nil {
		fatalErrLogger.Err(err).Msg("Failed to load lexicon")
		os.Exit(1)
	}

	switch {
	case *solve:
		if err := solveCommand(reader.New(lex), *sentence, *question, ui); err != nil {
			fmt.Fprintln(ui.Err, err)
			os.Exit(2)
		}
		return
	case *repl:
		newSession(reader.New(lex), ui).Run()
		return
	}

	ppln := startPipeline(cfg, lex, &readerLogger)

	if *batch != "" {
		if err := batchCommand(ppln, *batch, ui); err != nil {
			fatalErrLogger.Err(err).Msg("Batch failed")
			os.Exit(1)
		}
		return
	}

	if config.RestAPIActive {
		go func() {
			readerLogger.Info().Msg("Starting API service")
			host := fmt.Sprintf(":%s", config.RestAPIPort)
			readerLogger.Info().Msgf("REST API on %s", host)
			err := http.ListenAndServe(host, newAPIHandler(ppln, config.AllowedOrigins))
			fatalErrLogger.Err(err).Msg("REST API stopped with error")
		}()
	}
	if !config.WorkerActive {
		if !config.RestAPIActive {
			readerLogger.Info().Msg("Neither REST API nor worker is active, nothing to do")
			return
		}
		select {}
	}

	readerLogger.Info().Msg("Start Reader Worker")
	for {
		rmqWorker, err := worker.New(ppln)
		if err != nil {
			readerLogger.Fatal().Err(err).Msg("Could not initialize RMQ worker")
			os.Exit(1)
		}
		err = rmqWorker.StartWorker()
		if err != nil {
			readerLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
			time.Sleep(5 * time.Second)
		}
	}
}

func loadConfiguration(config Config) (types.Configuration, error) {
	cfg := types.DefaultConfiguration()
	if config.ConfigPath != "" {
		var err error
		if cfg, err = types.LoadConfiguration(config.ConfigPath); err != nil {
			return cfg, err
		}
	}
	if config.LexiconDir != "" {
		cfg.Lexicon = types.LexiconSource{Dir: config.LexiconDir}
	}
	return cfg, nil
}

func loadLexicon(cfg types.Configuration, readerLogger *zerolog.Logger) (*lexicon.Lexicon, error) {
	var fetcher lexicon.Fetcher
	if cfg.Lexicon.S3Key != "" {
		s3Client, err := s3client.New()
		if err != nil {
			return nil, fmt.Errorf("lexicon is stored in S3 but the client failed: %w", err)
		}
		defer s3Client.Close()
		fetcher = s3Client
	}
	lex, err := lexicon.Load(cfg.Lexicon, fetcher)
	if err != nil {
		return nil, err
	}
	readerLogger.Info().
		Str("configuration", cfg.Name).
		Int("entries", lex.Len()).
		Msg("Lexicon loaded")
	return lex, nil
}

func startPipeline(cfg types.Configuration, lex *lexicon.Lexicon, readerLogger *zerolog.Logger) pipeline.Pipeline {
	params := pipeline.GetQuestionAnsweringParams(cfg, lex)
	for retry := 0; retry < pipelineStartMaxRetries; retry++ {
		ppln, err := pipeline.QuestionAnswering(params)
		if err != nil {
			readerLogger.Err(err).Msg("Failed to start question answering pipeline. Retrying in 5 sec")
			time.Sleep(5 * time.Second)
			continue
		}
		readerLogger.Info().Msg("Pipeline loaded")
		return ppln
	}
	readerLogger.Fatal().Caller().Msg("Could not start pipeline after 5 retries, exiting")
	os.Exit(1)
	return nil
}

func newAPIHandler(ppln pipeline.Pipeline, allowedOrigins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(api.NewHandler(ppln))
}

var errMissingInput = errors.New("-solve needs both -sentence and -question")

func solveCommand(agent *reader.Agent, sentence, question string, ui UI) error {
	if sentence == "" || question == "" {
		return errMissingInput
	}
	_, err := fmt.Fprintln(ui.Out, agent.Solve(sentence, question))
	return err
}
