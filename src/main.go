package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"liftsim/src/config"
	"liftsim/src/sim"
	"liftsim/src/types"
)

func main() {
	envPath := flag.String("env", "", "Path to a .env file with config overrides")
	verbose := flag.Bool("verbose", false, "Mirror debug logs to stdout")
	flag.Parse()

	sim.InitLogger(*verbose)
	if *envPath != "" {
		if err := config.LoadEnv(*envPath); err != nil {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(1)
		}
	}

	session := sim.NewSession()

	fmt.Println("Hotel California Elevator Simulator")
	fmt.Printf("Floors: %d to %d\n", config.MinFloor, config.MaxFloor)
	fmt.Println("Type 'help' for commands.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		command := strings.ToLower(parts[0])
		switch {
		case command == "request":
			if len(parts) < 2 {
				fmt.Println("usage: request <floor>")
				continue
			}
			floor, err := strconv.Atoi(parts[1])
			if err != nil {
				fmt.Println("invalid floor")
				continue
			}
			submit(session, floor)
		case isInteger(command) && len(parts) == 1:
			floor, _ := strconv.Atoi(command)
			submit(session, floor)
		case command == "undo":
			undo(session)
		case command == "step":
			served := session.Step()
			if len(served) == 0 {
				fmt.Println("No pending targets to serve.")
			}
			for _, stop := range served {
				fmt.Printf("Car %s served floor %d.\n", stop.Car, stop.Floor)
			}
		case command == "auto":
			served, steps, completed := session.RunToCompletion(0)
			for _, stop := range served {
				fmt.Printf("[auto] Car %s served floor %d.\n", stop.Car, stop.Floor)
			}
			if completed {
				fmt.Printf("Auto-run finished in %d step(s).\n", steps)
			} else {
				fmt.Printf("Auto-run stopped by safety cap after %d step(s).\n", steps)
			}
		case command == "status":
			printStatus(session.Snapshot())
		case command == "help":
			printHelp()
		case command == "exit" || command == "quit":
			fmt.Println("Exiting simulator.")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for commands.")
		}
	}
}

func submit(session *sim.Session, floor int) {
	name, err := session.SubmitRequest(floor)
	if err != nil {
		var rangeErr *types.RangeError
		if errors.As(err, &rangeErr) {
			fmt.Printf("floor must be between %d and %d\n", rangeErr.Min, rangeErr.Max)
			return
		}
		fmt.Println("request failed:", err)
		return
	}
	fmt.Printf("Assigned floor %d to car %s.\n", floor, name)
}

func undo(session *sim.Session) {
	floor, outcome := session.UndoLast()
	switch outcome {
	case types.UndoRemoved:
		fmt.Printf("Undo: removed request %d.\n", floor)
	case types.UndoNotFound:
		fmt.Printf("Undo: request %d was already served or not found.\n", floor)
	case types.UndoEmpty:
		fmt.Println("Nothing to undo.")
	}
}

func printStatus(snap types.SessionSnapshot) {
	for _, c := range snap.Cars {
		fmt.Printf("Car %s: floor=%d dir=%s up=%v down=%v history=%v\n",
			c.Name, c.Floor, c.Direction, c.PendingUp, c.PendingDown, c.History)
	}
	fmt.Printf("Incoming queue: %v\n", snap.Incoming)
	fmt.Print("Undo ledger (most recent last): [")
	for i, entry := range snap.Undo {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(entry.Floor)
	}
	fmt.Println("]")
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  request <floor>   - add request (or just type a number, e.g. 5 or -3)")
	fmt.Println("  undo              - cancel the last still-pending request")
	fmt.Println("  step              - each car serves its next target if it has one")
	fmt.Println("  auto              - run until all queues are empty")
	fmt.Println("  status            - print current state")
	fmt.Println("  help              - this text")
	fmt.Println("  exit              - quit")
}

func isInteger(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
