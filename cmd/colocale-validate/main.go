package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Urotea/colocale"
)

type config struct {
	Dirs             []string `env:"COLOCALE_DIRS" envSeparator:","`
	Locales          []string `env:"COLOCALE_LOCALES" envSeparator:","`
	RequirePluralOne bool     `env:"COLOCALE_REQUIRE_PLURAL_ONE"`
}

func loadConfig() (*config, error) {
	// .env is optional; real environments provide the variables directly.
	_ = godotenv.Load()

	cfg := &config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	locales := flag.String("locales", "", "comma separated locale order; the first locale is the cross-locale reference")
	requireOne := flag.Bool("require-plural-one", cfg.RequirePluralOne, "treat a missing _one plural sibling as an error")
	flag.Parse()

	if *locales != "" {
		cfg.Locales = strings.Split(*locales, ",")
	}
	cfg.RequirePluralOne = *requireOne

	if args := flag.Args(); len(args) > 0 {
		cfg.Dirs = args
	}
	if len(cfg.Dirs) == 0 {
		return nil, fmt.Errorf("no catalog directories given (arguments or COLOCALE_DIRS)")
	}

	cfg.Locales = colocale.NormalizeLocales(cfg.Locales)
	return cfg, nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("colocale-validate: %v", err)
	}

	raw, err := colocale.NewFileLoader(cfg.Dirs...).Load()
	if err != nil {
		log.Fatalf("colocale-validate: %v", err)
	}

	locales := cfg.Locales
	if len(locales) == 0 {
		for locale := range raw {
			locales = append(locales, locale)
		}
		sort.Strings(locales)
	}

	var opts []colocale.ValidatorOption
	if cfg.RequirePluralOne {
		opts = append(opts, colocale.WithRequiredPluralOne())
	}
	validator := colocale.NewValidator(opts...)

	valid := true
	for _, locale := range locales {
		result := validator.ValidateLocale(raw[locale])
		printResult(locale, result)
		if !result.Valid {
			valid = false
		}
	}

	if len(locales) >= 2 {
		result := colocale.ValidateCrossLocale(raw.Catalog(), locales...)
		printResult("cross-locale", result)
		if !result.Valid {
			valid = false
		}
	}

	if !valid {
		os.Exit(1)
	}
}

func printResult(scope string, result *colocale.ValidationResult) {
	for _, issue := range result.Errors {
		fmt.Printf("%s: error: %s\n", scope, formatIssue(issue))
	}
	for _, issue := range result.Warnings {
		fmt.Printf("%s: warning: %s\n", scope, formatIssue(issue))
	}
	if result.Valid {
		fmt.Printf("%s: ok\n", scope)
	}
}

func formatIssue(issue colocale.Issue) string {
	location := issue.Namespace
	if issue.Key != "" {
		location += "." + issue.Key
	}
	if issue.Locale != "" {
		location = issue.Locale + "/" + location
	}
	return fmt.Sprintf("%s: %s: %s", issue.Type, location, issue.Message)
}
