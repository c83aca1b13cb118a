package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: packassets <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  plan        Show the enqueue plan of an instance")
	fmt.Fprintln(w, "  resolve     Print the URL of an entry or static file")
	fmt.Fprintln(w, "  env         Show the detected environment")
	fmt.Fprintln(w, "  doctor      Check instances and manifests")
	fmt.Fprintln(w, "  init        Write a starter config")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'packassets help <command>' for details on a specific command.")
}

// printInstanceFlags prints the flags shared by instance commands.
func printInstanceFlags(w io.Writer) {
	fmt.Fprintln(w, "Instance:")
	fmt.Fprintln(w, "  -c, --config <name>              Config file name or path")
	fmt.Fprintln(w, "  -i, --instance <name>            Instance name (default \"theme\")")
	fmt.Fprintln(w, "      --development-url <url>      Development server base URL")
	fmt.Fprintln(w, "      --production-file-path <dir> Disk root for the production manifest")
	fmt.Fprintln(w, "  -t, --timeout <duration>         Manifest fetch timeout (default 5s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                      Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                    Show debug output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PACKASSETS_CONFIG, PACKASSETS_INSTANCE, PACKASSETS_DEVELOPMENT_URL,")
	fmt.Fprintln(w, "  PACKASSETS_TIMEOUT override the config; flags override the environment.")
}

// printPlanUsage prints usage for the plan command.
func printPlanUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: packassets plan [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the assets an instance enqueues on a host phase, in load order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Plan:")
	fmt.Fprintln(w, "  -p, --phase <s>                  Host phase: frontend, editor")
	fmt.Fprintln(w, "      --json                       Output JSON")
	fmt.Fprintln(w)
	printInstanceFlags(w)
}

// printResolveUsage prints usage for the resolve command.
func printResolveUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: packassets resolve <entry> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the URL of a bundler entry, or of a static file with --static.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resolve:")
	fmt.Fprintln(w, "      --type <s>                   File type: js, css")
	fmt.Fprintln(w, "      --static                     Treat the argument as a static file path")
	fmt.Fprintln(w)
	printInstanceFlags(w)
}

// printEnvUsage prints usage for the env command.
func printEnvUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: packassets env [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the environment, base URL, and manifest of an instance.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --json                       Output JSON")
	fmt.Fprintln(w)
	printInstanceFlags(w)
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: packassets doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check every configured instance, or the one given with --instance.")
	fmt.Fprintln(w, "Exits 1 when an instance cannot be registered.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --json                       Output JSON")
	fmt.Fprintln(w)
	printInstanceFlags(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: packassets init [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a starter config to stdout or a file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <path>              Write to a file instead of stdout")
	fmt.Fprintln(w, "  -f, --force                      Overwrite an existing file")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "plan":
		printPlanUsage(env.Stdout)
	case "resolve":
		printResolveUsage(env.Stdout)
	case "env":
		printEnvUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: packassets version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: packassets help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
