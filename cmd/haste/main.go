package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"haste/internal/agent"
	"haste/internal/domain"
	"haste/internal/engine"
	"haste/internal/progression"
	"haste/internal/terminal"
	"haste/internal/version"
	"haste/pkg/api"
	"haste/pkg/logger"
)

func main() {
	// 1. Парсинг конфигурации
	var (
		seed        int64
		configPath  string
		className   string
		showVersion bool
		autopilot   bool
	)
	flag.Int64Var(&seed, "seed", 0, "Run seed (0 for random)")
	flag.StringVar(&configPath, "config", "", "Path to YAML balance config (default $HASTE_CONFIG)")
	flag.StringVar(&className, "class", "", "Character class: cannoneer, gunslinger, sorcerer (or 1-3)")
	flag.BoolVar(&autopilot, "bot", false, "Let the autopilot play (keys still work)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}

	// stdout занят экраном, логи пишем в файл
	logFile, err := logger.OpenFile(os.Getenv("HASTE_LOG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger.InitWithOutput(logFile)

	logger.Log.Info("Starting HASTE...")
	logger.Log.Info(version.String())

	if configPath == "" {
		configPath = os.Getenv("HASTE_CONFIG")
	}
	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		fatal(os.Stderr, "Failed to load config", err)
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random seed: %d", cfg.Seed)
	}

	class, err := chooseClass(className)
	if err != nil {
		fatal(os.Stderr, "Failed to choose class", err)
	}

	// 2. Терминал и забег
	term, err := terminal.Open()
	if err != nil {
		fatal(os.Stderr, "Terminal init error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		input  engine.InputSource = term
		render engine.Renderer    = term
	)
	if autopilot {
		bot := agent.NewBot(cfg.Balance.RayLength, term, term)
		input, render = bot, bot
		logger.Log.Info("🤖 Autopilot enabled.")
	}

	player := domain.NewPlayer(class)
	runner := engine.NewRunner(cfg, player, engine.NewSystemClock(), input, render, progression.NewAutoUpgrader())
	outcome, err := runner.Run(ctx)
	term.Close()

	if err != nil && !errors.Is(err, context.Canceled) {
		fatal(os.Stderr, "Run failed (run "+runner.RunID+")", err)
	}

	fmt.Println(banner(outcome, player))
	logger.Log.Info("Done.")
}

// fatal пишет ошибку в лог и в stderr (лог уходит в файл) и завершает процесс
func fatal(stderr io.Writer, msg string, err error) {
	reportError(stderr, msg, err)
	os.Exit(1)
}

func reportError(stderr io.Writer, msg string, err error) {
	logger.Log.WithError(err).Error(msg)
	fmt.Fprintf(stderr, "haste: %s: %v\n", msg, err)
}

// chooseClass берет класс из флага, иначе спрашивает на stdin
func chooseClass(name string) (domain.Class, error) {
	if name != "" {
		return domain.ParseClass(name)
	}

	fmt.Println("Choose your class:")
	fmt.Println("  1) Cannoneer   slow, heavy cannonballs")
	fmt.Println("  2) Gunslinger  fast, weak shots")
	fmt.Println("  3) Sorcerer    INT-powered bolts")
	fmt.Print("> ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return domain.ClassUnknown, fmt.Errorf("read class: %w", err)
	}
	return domain.ParseClass(line)
}

func banner(o api.Outcome, p *domain.Player) string {
	switch o {
	case api.OutcomeVictory:
		return fmt.Sprintf("The boss is defeated! Total XP: %d", p.TotalXP)
	case api.OutcomeDefeat:
		return fmt.Sprintf("YOU DIED! Total XP: %d", p.TotalXP)
	}
	return fmt.Sprintf("Goodbye, %s.", p.Class)
}
