package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"monkey/lexer"
	"monkey/repl"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

type (
	CommandFunc func(args []string)

	FlagInfo struct {
		Name        string
		Description string
	}

	CommandInfo struct {
		Description string
		Function    CommandFunc
		Flags       []FlagInfo
	}
)

var commands map[string]CommandInfo

func init() {
	commands = map[string]CommandInfo{
		"lex": {
			Description: "Takes the filepath of a script, and prints its token stream",
			Function:    Lex,
			Flags: []FlagInfo{
				{
					Name:        "-f",
					Description: "script file path",
				},
				{
					Name:        "--json",
					Description: "print the token stream as JSON",
				},
			},
		},
		"repl": {
			Description: "Starts an interactive session that tokenizes each line",
			Function:    Repl,
			Flags:       []FlagInfo{},
		},
		"help": {
			Description: "Prints the usage of all commands",
			Function:    Help,
			Flags:       []FlagInfo{},
		},
	}
}

func Help(args []string) {
	if len(args) < 1 {
		// show the whole help catalog
		printResult := "\n\033[1;35mSupported Commands:\033[0m\n\n"

		for name, cmd := range commands {
			printResult += fmt.Sprintf("  \033[1;36m%v\033[0m\n", name)
			printResult += fmt.Sprintf("    \033[1;37mDescription:\033[0m \033[0;37m%v\033[0m\n", cmd.Description)

			if len(cmd.Flags) > 0 {
				printResult += "    \033[1;37mFlags:\033[0m\n"
				for _, flag := range cmd.Flags {
					printResult += fmt.Sprintf("      \033[1;33m%v\033[0m - \033[0;37m%v\033[0m\n", flag.Name, flag.Description)
				}
			}
			printResult += "\n"
		}

		fmt.Println(printResult)
	} else if len(args) == 1 {
		// print the help of the specified command
		cmdName := args[0]

		// check if command is supported or not
		if _, ok := commands[cmdName]; !ok {
			fmt.Println("ERROR: provided command, isn't supported")
			return
		}

		cmd := commands[cmdName]

		printResult := fmt.Sprintf("\n\033[1;35mCommand:\033[0m \033[1;36m%v\033[0m\n", cmdName)
		printResult += fmt.Sprintf("\033[1;37mDescription:\033[0m \033[0;37m%v\033[0m\n", cmd.Description)

		if len(cmd.Flags) > 0 {
			printResult += fmt.Sprintln("\033[1;37mFlags:\033[0m")
			for _, flag := range cmd.Flags {
				printResult += fmt.Sprintf("  \033[1;33m%v\033[0m - \033[0;37m%v\033[0m\n", flag.Name, flag.Description)
			}
		} else {
			printResult += "\033[0;37m(No flags available)\033[0m\n"
		}

		fmt.Println(printResult)
	}
}

func Lex(args []string) {
	fileTarget := ""
	asJSON := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-f":
			if i+1 >= len(args) {
				fmt.Println("ERROR: provide the filepath after the -f flag")
				return
			}
			fileTarget = args[i+1]
			i++
		case "--json":
			asJSON = true
		default:
			fmt.Printf("ERROR: unknown flag %v, check help for manual.\n", args[i])
			return
		}
	}

	if len(fileTarget) <= 0 {
		fmt.Println("ERROR: provide the filepath flag -f to assign the path to it")
		return
	}

	osPath, _ := os.Getwd()
	targetFile := filepath.Join(osPath, fileTarget)

	byteContent, err := os.ReadFile(targetFile)

	if err != nil {
		fmt.Println(err)
		return
	}

	tokens := lexer.NewLexer(string(byteContent)).Tokenize()

	if err := writeTokens(os.Stdout, tokens, asJSON); err != nil {
		fmt.Println(err)
	}
}

func writeTokens(out io.Writer, tokens []lexer.Token, asJSON bool) error {
	if asJSON {
		return json.MarshalWrite(out, tokens, jsontext.Multiline(true), jsontext.WithIndent("  "))
	}
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(out, tok); err != nil {
			return err
		}
	}
	return nil
}

func Repl(args []string) {
	fmt.Println("Type some source code, one line at a time.")
	repl.Start(os.Stdin, os.Stdout)
}

func Execute() {
	if len(os.Args) < 2 {
		// no command means an interactive session
		Repl(nil)
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	if _, ok := commands[name]; !ok {
		fmt.Printf("ERROR: unknown command %v, check help for manual.\n", name)
		return
	}

	commands[name].Function(args)
}
