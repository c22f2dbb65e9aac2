// Package harness parses and replays the line-oriented scripted test
// format used to exercise a matching.Engine from a text file: one command
// per line (add/modify/cancel) followed by a single terminal assertion
// line, in the spirit of the teacher's providers/nasdaq/itch line/record
// processor.
package harness

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/orderbooklabs/clob-engine/matching"
)

// CommandKind identifies which scripted command a Command line encodes.
type CommandKind uint8

const (
	CommandAdd CommandKind = iota + 1
	CommandModify
	CommandCancel
)

// Command is one parsed, non-terminal line of a script.
type Command struct {
	Kind CommandKind

	ID       matching.OrderID
	Side     matching.Side
	Type     matching.OrderType
	Price    matching.Price
	Quantity matching.Quantity
}

// Result is the terminal `R` line: the expected book state after every
// preceding command has been replayed.
type Result struct {
	Size      int
	BidLevels int
	AskLevels int
}

// Script is a fully parsed scenario: an ordered command list plus the
// expected terminal result.
type Script struct {
	Commands []Command
	Result   Result
}

var sideTokens = map[string]matching.Side{
	"B": matching.SideBuy,
	"S": matching.SideSell,
}

var typeTokens = map[string]matching.OrderType{
	"GoodTillCancel": matching.GoodTillCancel,
	"FillAndKill":    matching.FillAndKill,
	"FillOrKill":     matching.FillOrKill,
	"GoodForDay":     matching.GoodForDay,
	"Market":         matching.Market,
}

// Parse reads a scripted scenario from r. Malformed lines are skipped (and
// reported through the skipped callback, if non-nil) rather than failing
// the parse; the parse fails on a missing terminal R line, an empty line
// appearing before one is found, a non-empty line after it, or an error
// reading r.
func Parse(r io.Reader, skipped func(lineNo int, line string, err error)) (*Script, error) {
	script := &Script{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	resultSeen := false

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			if !resultSeen {
				return nil, fmt.Errorf("harness: line %d: empty line before terminal result", lineNo)
			}
			continue
		}

		if resultSeen {
			return nil, fmt.Errorf("harness: line %d: non-empty line after terminal result", lineNo)
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "R":
			result, err := parseResult(fields)
			if err != nil {
				if skipped != nil {
					skipped(lineNo, line, err)
				}
				continue
			}
			script.Result = result
			resultSeen = true

		case "A":
			cmd, err := parseAdd(fields)
			if err != nil {
				if skipped != nil {
					skipped(lineNo, line, err)
				}
				continue
			}
			script.Commands = append(script.Commands, cmd)

		case "M":
			cmd, err := parseModify(fields)
			if err != nil {
				if skipped != nil {
					skipped(lineNo, line, err)
				}
				continue
			}
			script.Commands = append(script.Commands, cmd)

		case "C":
			cmd, err := parseCancel(fields)
			if err != nil {
				if skipped != nil {
					skipped(lineNo, line, err)
				}
				continue
			}
			script.Commands = append(script.Commands, cmd)

		default:
			if skipped != nil {
				skipped(lineNo, line, fmt.Errorf("unknown command token %q", fields[0]))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("harness: %w", err)
	}

	if !resultSeen {
		return nil, fmt.Errorf("harness: missing terminal result line")
	}
	return script, nil
}

// parseAdd parses `A <side> <type> <price> <quantity> <id>`.
func parseAdd(fields []string) (Command, error) {
	if len(fields) != 6 {
		return Command{}, fmt.Errorf("add: want 6 fields, got %d", len(fields))
	}
	side, ok := sideTokens[fields[1]]
	if !ok {
		return Command{}, fmt.Errorf("add: %w: %q", matching.ErrInvalidOrderSide, fields[1])
	}
	orderType, ok := typeTokens[fields[2]]
	if !ok {
		return Command{}, fmt.Errorf("add: %w: %q", matching.ErrInvalidOrderType, fields[2])
	}
	price, err := parseNonNegativeInt32(fields[3])
	if err != nil {
		return Command{}, fmt.Errorf("add: %w: %v", matching.ErrInvalidOrderPrice, err)
	}
	quantity, err := parseNonNegativeUint32(fields[4])
	if err != nil {
		return Command{}, fmt.Errorf("add: %w: %v", matching.ErrInvalidOrderQuantity, err)
	}
	id, err := parseNonNegativeUint64(fields[5])
	if err != nil {
		return Command{}, fmt.Errorf("add: id: %w", err)
	}
	return Command{
		Kind:     CommandAdd,
		ID:       matching.OrderID(id),
		Side:     side,
		Type:     orderType,
		Price:    matching.Price(price),
		Quantity: matching.Quantity(quantity),
	}, nil
}

// parseModify parses `M <id> <side> <price> <quantity>`.
func parseModify(fields []string) (Command, error) {
	if len(fields) != 5 {
		return Command{}, fmt.Errorf("modify: want 5 fields, got %d", len(fields))
	}
	id, err := parseNonNegativeUint64(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("modify: id: %w", err)
	}
	side, ok := sideTokens[fields[2]]
	if !ok {
		return Command{}, fmt.Errorf("modify: %w: %q", matching.ErrInvalidOrderSide, fields[2])
	}
	price, err := parseNonNegativeInt32(fields[3])
	if err != nil {
		return Command{}, fmt.Errorf("modify: %w: %v", matching.ErrInvalidOrderPrice, err)
	}
	quantity, err := parseNonNegativeUint32(fields[4])
	if err != nil {
		return Command{}, fmt.Errorf("modify: %w: %v", matching.ErrInvalidOrderQuantity, err)
	}
	return Command{
		Kind:     CommandModify,
		ID:       matching.OrderID(id),
		Side:     side,
		Price:    matching.Price(price),
		Quantity: matching.Quantity(quantity),
	}, nil
}

// parseCancel parses `C <id>`.
func parseCancel(fields []string) (Command, error) {
	if len(fields) != 2 {
		return Command{}, fmt.Errorf("cancel: want 2 fields, got %d", len(fields))
	}
	id, err := parseNonNegativeUint64(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("cancel: id: %w", err)
	}
	return Command{Kind: CommandCancel, ID: matching.OrderID(id)}, nil
}

// parseResult parses `R <all_count> <bid_levels> <ask_levels>`.
func parseResult(fields []string) (Result, error) {
	if len(fields) != 4 {
		return Result{}, fmt.Errorf("result: want 4 fields, got %d", len(fields))
	}
	size, err := parseNonNegativeInt(fields[1])
	if err != nil {
		return Result{}, fmt.Errorf("result: all_count: %w", err)
	}
	bidLevels, err := parseNonNegativeInt(fields[2])
	if err != nil {
		return Result{}, fmt.Errorf("result: bid_levels: %w", err)
	}
	askLevels, err := parseNonNegativeInt(fields[3])
	if err != nil {
		return Result{}, fmt.Errorf("result: ask_levels: %w", err)
	}
	return Result{Size: size, BidLevels: bidLevels, AskLevels: askLevels}, nil
}

func parseNonNegativeInt(field string) (int, error) {
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %q rejected", field)
	}
	return int(n), nil
}

func parseNonNegativeInt32(field string) (int32, error) {
	n, err := strconv.ParseInt(field, 10, 32)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %q rejected", field)
	}
	return int32(n), nil
}

func parseNonNegativeUint32(field string) (uint32, error) {
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %q rejected", field)
	}
	return uint32(n), nil
}

func parseNonNegativeUint64(field string) (uint64, error) {
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %q rejected", field)
	}
	return uint64(n), nil
}
