package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"beachsafe-lostandfound/conversation"
	"beachsafe-lostandfound/dao"
	"beachsafe-lostandfound/handler"
	"beachsafe-lostandfound/match"
	"beachsafe-lostandfound/utils"
)

const helpPrompt = `Commands:
  report                       file a new lost/found report
  list [status]                list reports, optionally by status
  search <text>                free-text search over reports
  tags                         show the tag vocabulary
  find <id>                    ranked match suggestions for a report
  claim <id> | resolve <id>    move a report along its lifecycle
  msg <id> <receiver> <text>   message the other party about an item
  thread <id>                  show an item's message thread
  read <messageId>             mark a message as read
  quit`

// runLoop is a line-based stand-in for the app's screens: each command
// exercises one of the engine's entry points against the shared store.
func runLoop(store *dao.Store, engine *match.Engine, ledger *conversation.Ledger, userID string) {
	fmt.Printf("Signed in as %s\n%s\n", userID, helpPrompt)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		cmd, rest := args[0], args[1:]

		var err error
		switch cmd {
		case "report":
			err = reportCmd(scanner, store, userID)
		case "list":
			err = listCmd(store, rest)
		case "search":
			err = searchCmd(store, strings.Join(rest, " "))
		case "tags":
			err = tagsCmd(store)
		case "find":
			err = findCmd(store, engine, rest)
		case "claim":
			err = transitionCmd(store, userID, rest, dao.StatusClaimed)
		case "resolve":
			err = transitionCmd(store, userID, rest, dao.StatusResolved)
		case "msg":
			err = msgCmd(ledger, userID, rest)
		case "thread":
			err = threadCmd(ledger, rest)
		case "read":
			err = readCmd(ledger, rest)
		case "quit", "exit":
			return
		case "help":
			fmt.Println(helpPrompt)
		default:
			fmt.Println("Unknown command, try 'help'")
		}
		if err != nil {
			fmt.Println("error:", err)
		}
	}
}

func prompt(scanner *bufio.Scanner, question string) string {
	fmt.Print(question)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// reportCmd walks the same form the app's report screen collects, one
// field per line.
func reportCmd(scanner *bufio.Scanner, store *dao.Store, userID string) error {
	input := dao.CreateInput{
		Status:      dao.Status(prompt(scanner, "lost or found? ")),
		Title:       prompt(scanner, "title: "),
		Category:    dao.Category(prompt(scanner, "category: ")),
		BeachID:     prompt(scanner, "beach id: "),
		Description: prompt(scanner, "description: "),
		Tags:        strings.Fields(prompt(scanner, "tags (space separated): ")),
		ContactInfo: prompt(scanner, "contact info: "),
	}
	date, err := time.Parse("2006-01-02", prompt(scanner, "date (YYYY-MM-DD): "))
	if err != nil {
		return fmt.Errorf("bad date: %w", err)
	}
	input.Date = date

	item, err := store.Create(userID, input)
	if err != nil {
		return err
	}
	fmt.Printf("Report filed:\n%s", handler.Summary(*item))
	return nil
}

func listCmd(store *dao.Store, args []string) error {
	items, err := store.ListAll()
	if err != nil {
		return err
	}
	q := handler.Query{}
	if len(args) > 0 {
		q.Status = dao.Status(args[0])
	}
	printSummaries(handler.Summaries(items, q))
	return nil
}

func searchCmd(store *dao.Store, text string) error {
	items, err := store.ListAll()
	if err != nil {
		return err
	}
	printSummaries(handler.Summaries(items, handler.Query{Text: text}))
	return nil
}

func tagsCmd(store *dao.Store) error {
	tags, err := store.ListTags()
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(tags, ", "))
	return nil
}

func findCmd(store *dao.Store, engine *match.Engine, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: find <id>")
	}
	target, err := store.Get(args[0])
	if err != nil {
		return err
	}
	defer utils.MetricTimeCost("match ranking")()
	matches, err := engine.FindMatches(*target)
	if err != nil {
		return err
	}
	fmt.Printf("%d suggestion(s)\n", len(matches))
	for _, m := range matches {
		fmt.Printf("score %d\n%s", m.Score, handler.Summary(m.Item))
	}
	return nil
}

func transitionCmd(store *dao.Store, userID string, args []string, to dao.Status) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s <id>", to)
	}
	item, err := store.Transition(userID, args[0], to)
	if err != nil {
		return err
	}
	fmt.Printf("Report %s is now %s\n", item.ID, item.Status)
	return nil
}

func msgCmd(ledger *conversation.Ledger, userID string, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: msg <id> <receiver> <text>")
	}
	msg, err := ledger.SendMessage(userID, args[0], args[1], strings.Join(args[2:], " "))
	if err != nil {
		return err
	}
	fmt.Printf("Sent message %s\n", msg.ID)
	return nil
}

func threadCmd(ledger *conversation.Ledger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: thread <id>")
	}
	msgs, err := ledger.Thread(args[0])
	if err != nil {
		return err
	}
	for _, m := range msgs {
		read := " "
		if m.IsRead {
			read = "r"
		}
		fmt.Printf("[%s][%s] %s -> %s: %s\n",
			m.Timestamp.Format("01-02 15:04"), read, m.SenderID, m.ReceiverID, m.Content)
	}
	return nil
}

func readCmd(ledger *conversation.Ledger, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: read <messageId>")
	}
	return ledger.MarkRead(args[0])
}

func printSummaries(summaries []string) {
	fmt.Printf("%d record(s)\n", len(summaries))
	for _, s := range summaries {
		fmt.Println(s)
	}
}
