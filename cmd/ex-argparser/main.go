package main

import (
	"os"

	"github.com/mah0x211/argparser/cmd"
	"github.com/mah0x211/argparser/getopt"
	"github.com/mah0x211/argparser/log"
	"github.com/mah0x211/argparser/util"
)

type Args struct {
	ShowUsage bool
	Greeting  bool
	Reply     string
}

type Parser = getopt.Parser[Args]

func NewParser() *Parser {
	p := getopt.New[Args]("ex-argparser", "An example of ArgParser",
		"ex-argparser [OPTION]")

	p.AddAliases([]string{"-h", "--help"}, func(args *Args, _ getopt.Cursor) {
		args.ShowUsage = true
	}, getopt.WithDescription("Show this help message"))

	p.AddAliases([]string{"-g", "--greeting"}, func(args *Args, _ getopt.Cursor) {
		args.Greeting = true
	}, getopt.WithDescription("Show a greeting message"))

	p.AddAliases([]string{"-r", "--reply"}, func(args *Args, c getopt.Cursor) {
		if c.HasNext() {
			args.Reply = c.Next()
		} else {
			c.Error("-r: Need a reply string")
		}
	}, getopt.WithUsage("STRING"), getopt.WithDescription("Reply a given string"))

	p.AddAliases([]string{"-v", "--verbose"}, getopt.Simple[Args](func() {
		log.Verbose = true
	}), getopt.WithDescription("Display verbose output"))

	p.SetCompletionHook(func(args *Args, _ getopt.Cursor) {
		log.Debug("parsed: help=%t greeting=%t reply=%q",
			args.ShowUsage, args.Greeting, args.Reply)
	})

	return p
}

func Run(argv []string) {
	p := NewParser()
	if !p.Parse(argv) {
		log.Fatal(p.ErrorMessage())
	}

	args := p.Result()
	switch {
	case args.ShowUsage:
		// help is not a successful run
		log.Print(p.Usage())
		util.Exit(1)

	case args.Greeting:
		log.Print("Hello")

	case args.Reply != "":
		log.Printf("Your message: %s", args.Reply)

	default:
		log.Print(p.Usage())
	}
}

func main() {
	os.Exit(cmd.Start("EX_ARGPARSER", os.Args, Run))
}
