// Package main runs a terminal voice conversation with the Mitra assistant.
//
// Usage:
//
//	go run ./cmd/krishi-talk -locale hi
//
// Environment variables:
//
//	KRISHI_API_KEY or GEMINI_API_KEY - Gemini API key (required)
//
// Speak into the microphone; press Ctrl-C to hang up. The running
// transcript is printed as turns complete.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	krishi "github.com/krishigpt/krishi-go/sdk"
)

func main() {
	_ = godotenv.Load()

	locale := flag.String("locale", "en", "conversation locale (en, hi, mr, ta, te, kn, bn, gu, pa, ml)")
	flag.Parse()

	client, err := krishi.NewClient()
	if err != nil {
		log.Fatalf("client init: %v", err)
	}

	mic, speaker, cleanup, err := initAudio()
	if err != nil {
		log.Fatalf("audio init: %v", err)
	}
	defer cleanup()

	conv := client.NewConversation(krishi.Locale(*locale), speaker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nHanging up...")
		cancel()
	}()

	fmt.Println("Connecting to Mitra...")
	if err := conv.Start(ctx); err != nil {
		log.Fatalf("start conversation: %v", err)
	}
	defer conv.Stop()

	// Pump microphone frames until cancelled.
	go func() {
		frame := make([]byte, 640) // 20ms at 16kHz mono s16
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			n := mic.Read(frame)
			if n == 0 {
				continue
			}
			if err := conv.SendAudio(frame[:n]); err != nil {
				log.Printf("send audio: %v", err)
				return
			}
		}
	}()

	fmt.Println("Connected. Speak naturally; turns print below.")

	printed := 0
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if state := conv.State(); state == krishi.StateError {
				log.Fatalf("conversation failed: %v", conv.Err())
			}
			history := conv.History()
			for ; printed < len(history); printed++ {
				entry := history[printed]
				label := "You"
				if entry.Speaker == "model" {
					label = "Mitra"
				}
				if entry.Text != "" {
					fmt.Printf("%s: %s\n", label, entry.Text)
				}
			}
		}
	}
}
