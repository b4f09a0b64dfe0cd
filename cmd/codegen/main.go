package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/storeparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const sourceCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the DeriveN constructor family for stores",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  sourceCountKey,
				Usage: "Maximum number of typed sources to generate",
				Value: 8,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for stores started !")
	defer func() {
		log.Printf("Codegen for stores finished in %v", time.Since(start))
	}()

	sourceCount := cmd.Uint(sourceCountKey)

	contents := templates.DeriveGen(int(sourceCount))
	return os.WriteFile("stores/derive_gen.go", []byte(contents), 0644)
}
