// Command sfxgen generates, mutates, inspects and plays procedural sound
// effects.
//
// Usage:
//
//	sfxgen list [--fields]
//	sfxgen generate <category> [--seed N] [--out file.wav] [--spec-out spec.yaml]
//	sfxgen generate --script preset.lua [--seed N]
//	sfxgen render <spec> [<spec> ...]
//	sfxgen mutate <spec> [--seed N] [--count N] [--out-dir dir]
//	sfxgen inspect <spec|wav>
//	sfxgen play <spec|category> [--seed N]
//
// Examples:
//
//	sfxgen generate pickup --seed 7 --spec-out coin.yaml
//	sfxgen mutate coin.yaml --count 16 --out-dir variations
//	sfxgen generate laser --out - | aplay
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
