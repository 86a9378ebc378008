package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Urotea/colocale"
)

func main() {
	dir := flag.String("dir", "", "catalog directory to read")
	locale := flag.String("locale", "en", "locale whose shape drives the generated declarations")
	pkg := flag.String("pkg", "messages", "package name for the generated file")
	out := flag.String("out", "", "output file (stdout when empty)")
	flag.Parse()

	if *dir == "" {
		log.Fatal("colocale-gen: -dir is required")
	}

	raw, err := colocale.NewFileLoader(*dir).Load()
	if err != nil {
		log.Fatalf("colocale-gen: %v", err)
	}

	catalog := raw.Catalog()
	normalized := colocale.NormalizeLocale(*locale)
	messages, ok := catalog[normalized]
	if !ok {
		log.Fatalf("colocale-gen: locale %q not found in %s", normalized, *dir)
	}

	source, err := colocale.GenerateAccessors(*pkg, messages)
	if err != nil {
		log.Fatalf("colocale-gen: %v", err)
	}

	if *out == "" {
		fmt.Print(string(source))
		return
	}

	if err := os.WriteFile(*out, source, 0o644); err != nil {
		log.Fatalf("colocale-gen: write %s: %v", *out, err)
	}
}
