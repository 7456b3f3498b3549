package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Netflix/go-env"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"

	"crafty/clock"
	"crafty/internal"
	"crafty/logging"
	"crafty/projection"
	"crafty/usecases"
)

const usage = `Usage: crafty [--storage backend] <command>

Commands:
  post <user> <message>      post a message as <user>
  view <user>                view the timeline of <user>
  edit <message-id> <text>   replace the text of a message
  follow <user> <followee>   make <user> follow <followee>
  wall <user>                view the wall of <user>
`

func main() {
	storage := pflag.String("storage", "file", "storage backend: memory, file, badger or mysql")
	pflag.Parse()

	if err := run(pflag.Args(), *storage); err != nil {
		color.Red.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, storage string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return fmt.Errorf("no command given")
	}

	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	config.Storage = storage
	log := logging.FromLevel(config.LogLevel)

	ctx := context.Background()
	repos, closeStorage, err := internal.OpenStorage(ctx, config, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeStorage()
	}()

	dateProvider := clock.NewSystemDateProvider()

	switch command, rest := args[0], args[1:]; command {
	case "post":
		if len(rest) != 2 {
			return fmt.Errorf("usage: post <user> <message>")
		}
		id := uuid.New().String()
		useCase := usecases.NewPostMessageUseCase(repos.Messages, dateProvider)
		if err := useCase.Handle(ctx, usecases.PostMessageCommand{
			ID:     id,
			Author: rest[0],
			Text:   rest[1],
		}); err != nil {
			return err
		}
		color.Green.Println("✅ Message posted")
		fmt.Println("id:", id)
		return nil

	case "view":
		if len(rest) != 1 {
			return fmt.Errorf("usage: view <user>")
		}
		useCase := usecases.NewViewTimelineUseCase(repos.Messages, dateProvider)
		timeline, err := useCase.Handle(ctx, rest[0])
		if err != nil {
			return err
		}
		renderTimeline(timeline)
		return nil

	case "edit":
		if len(rest) != 2 {
			return fmt.Errorf("usage: edit <message-id> <text>")
		}
		useCase := usecases.NewEditMessageUseCase(repos.Messages)
		if err := useCase.Handle(ctx, usecases.EditMessageCommand{
			MessageID: rest[0],
			Text:      rest[1],
		}); err != nil {
			return err
		}
		color.Green.Println("✅ Message edited")
		return nil

	case "follow":
		if len(rest) != 2 {
			return fmt.Errorf("usage: follow <user> <followee>")
		}
		useCase := usecases.NewFollowUserUseCase(repos.Followees)
		if err := useCase.Handle(ctx, usecases.FollowUserCommand{
			User:         rest[0],
			UserToFollow: rest[1],
		}); err != nil {
			return err
		}
		color.Green.Printf("✅ %s is now following %s\n", rest[0], rest[1])
		return nil

	case "wall":
		if len(rest) != 1 {
			return fmt.Errorf("usage: wall <user>")
		}
		useCase := usecases.NewViewWallUseCase(repos.Messages, repos.Followees, dateProvider)
		wall, err := useCase.Handle(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Printf("Wall of %s (following: %v)\n", wall.User, wall.Following)
		renderTimeline(wall.Messages)
		return nil

	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func renderTimeline(entries []projection.Entry) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Author", "Message", "Published"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, entry := range entries {
		table.Append([]string{entry.Author, entry.Text, entry.PublicationTime})
	}
	table.Render()
}
