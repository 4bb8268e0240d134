package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/viant/resolver/cmd/command"
	"github.com/viant/resolver/cmd/options"
)

func New(version string, args options.Arguments) error {
	opts, err := buildOptions(args)
	if err != nil || opts == nil {
		return err
	}
	if opts.Version {
		fmt.Printf("Resolver: version: %v\n", version)
		return nil
	}
	if err := opts.Init(); err != nil {
		return err
	}
	return command.New().Exec(context.Background(), opts)
}

func buildOptions(args options.Arguments) (*options.Options, error) {
	opts := options.NewOptions(args)
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true
	if _, err := parser.ParseArgs(args); err != nil {
		flagsErr := &flags.Error{}
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(flagsErr.Message)
			return nil, nil
		}
		return nil, err
	}
	return opts, nil
}
