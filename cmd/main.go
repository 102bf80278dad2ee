package main

import (
	"chat-mediator/chat"
	"chat-mediator/console"
	"chat-mediator/domain/event"
	"chat-mediator/internal"
	"chat-mediator/moderation"
	"fmt"
	"os"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the mediator, plays the demo conversation and prints the event summary.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Mediator and its observers
	stats := event.NewStatsHandler(log)
	mediator := chat.NewChatMediator(log, chat.NewRegistry()).AddSinks(stats)

	if words := config.Words(); len(words) > 0 {
		char, err := internal.CharacterRune(config.CharReplacement)
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		moderator, err := moderation.NewModerator(words, char, log)
		if err != nil {
			return fmt.Errorf("moderator init failed: %w", err)
		}
		mediator.WithCensor(moderator)
	}

	// 3. Conversation
	transcript := console.NewTranscript(os.Stdout, config.Colours)
	transcript.Header("Chat (Mediator Pattern)")

	alice := chat.NewUser("Alice", mediator, transcript)
	bob := chat.NewUser("Bob", mediator, transcript)
	carlos := chat.NewUser("Carlos", mediator, transcript)

	mediator.Register(alice)
	mediator.Register(bob)
	mediator.Register(carlos)

	alice.Send("Hello!")
	bob.Send("Hi!")
	alice.SendPrivate("Bob", "Did you see the report?")
	mediator.Mute("Alice", "Carlos")
	carlos.Send("Can I still talk?")

	// 4. Summary
	if config.ShowStats {
		fmt.Println()
		console.RenderStats(os.Stdout, stats.Snapshot())
	}
	log.Debug("Demo finished")
	return nil
}
