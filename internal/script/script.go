package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ironsheep/selection-engine/internal/coords"
	"github.com/ironsheep/selection-engine/internal/engine"
	"github.com/ironsheep/selection-engine/internal/mask"
)

// Runner executes gesture-script commands against one engine.
type Runner struct {
	engine *engine.SelectionEngine
}

// NewRunner creates a runner bound to the given engine.
func NewRunner(e *engine.SelectionEngine) *Runner {
	return &Runner{engine: e}
}

// Run reads commands line by line until EOF, writing one status line
// per executed command to out. Rejected gestures are reported inline
// and do not stop the run; only a read error aborts.
func (r *Runner) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result, err := r.Execute(line)
		if err != nil {
			fmt.Fprintf(out, "rejected: %v\n", err)
			continue
		}
		fmt.Fprintln(out, result)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("script read error: %w", err)
	}
	return nil
}

// Execute runs a single command and returns its status line.
func (r *Runner) Execute(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty command")
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "wand":
		return r.wand(args)
	case "rect":
		return r.rect(args)
	case "ellipse":
		return r.ellipse(args)
	case "lasso":
		return r.lasso(args)
	case "brush":
		return r.brush(args)
	case "invert":
		r.engine.Invert()
		return r.status(), nil
	case "clear":
		r.engine.Clear()
		return r.status(), nil
	case "selectall":
		r.engine.SelectAll()
		return r.status(), nil
	case "expand":
		return r.morph(args, r.engine.Expand)
	case "contract":
		return r.morph(args, r.engine.Contract)
	case "tick":
		return r.tick(args)
	case "status":
		return r.status(), nil
	}
	return "", fmt.Errorf("unknown command %q", cmd)
}

func (r *Runner) wand(args []string) (string, error) {
	if len(args) != 4 {
		return "", fmt.Errorf("wand wants X Y TOLERANCE MODE, got %d args", len(args))
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("wand x: %w", err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return "", fmt.Errorf("wand y: %w", err)
	}
	tol, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return "", fmt.Errorf("wand tolerance: %w", err)
	}
	mode, err := mask.ParseMode(args[3])
	if err != nil {
		return "", err
	}
	if err := r.engine.MagicWand(x, y, tol, mode); err != nil {
		return "", err
	}
	return r.status(), nil
}

func (r *Runner) rect(args []string) (string, error) {
	if len(args) != 5 {
		return "", fmt.Errorf("rect wants LEFT TOP RIGHT BOTTOM MODE, got %d args", len(args))
	}
	var bounds [4]int
	for i := 0; i < 4; i++ {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return "", fmt.Errorf("rect bound %d: %w", i, err)
		}
		bounds[i] = v
	}
	mode, err := mask.ParseMode(args[4])
	if err != nil {
		return "", err
	}
	if err := r.engine.RectangleFinish(bounds[0], bounds[1], bounds[2], bounds[3], mode); err != nil {
		return "", err
	}
	return r.status(), nil
}

func (r *Runner) ellipse(args []string) (string, error) {
	if len(args) != 5 {
		return "", fmt.Errorf("ellipse wants CX CY RX RY MODE, got %d args", len(args))
	}
	var params [4]float64
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return "", fmt.Errorf("ellipse param %d: %w", i, err)
		}
		params[i] = v
	}
	mode, err := mask.ParseMode(args[4])
	if err != nil {
		return "", err
	}
	if err := r.engine.EllipseFinish(params[0], params[1], params[2], params[3], mode); err != nil {
		return "", err
	}
	return r.status(), nil
}

func (r *Runner) lasso(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("lasso wants MODE X1 Y1 ...")
	}
	mode, err := mask.ParseMode(args[0])
	if err != nil {
		return "", err
	}
	path, err := parsePath(args[1:])
	if err != nil {
		return "", fmt.Errorf("lasso path: %w", err)
	}
	if err := r.engine.LassoFinish(path, mode); err != nil {
		return "", err
	}
	return r.status(), nil
}

func (r *Runner) brush(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("brush wants RADIUS MODE X1 Y1 ...")
	}
	radius, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", fmt.Errorf("brush radius: %w", err)
	}
	mode, err := mask.ParseMode(args[1])
	if err != nil {
		return "", err
	}
	path, err := parsePath(args[2:])
	if err != nil {
		return "", fmt.Errorf("brush path: %w", err)
	}
	if err := r.engine.BrushFinish(path, radius, mode); err != nil {
		return "", err
	}
	return r.status(), nil
}

func (r *Runner) morph(args []string, op func(int) error) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("want exactly one RADIUS argument")
	}
	radius, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("radius: %w", err)
	}
	if err := op(radius); err != nil {
		return "", err
	}
	return r.status(), nil
}

func (r *Runner) tick(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("tick wants a count")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return "", fmt.Errorf("invalid tick count %q", args[0])
	}
	for i := 0; i < n; i++ {
		r.engine.Tick()
	}
	return fmt.Sprintf("ticked %d, runs=%d", n, len(r.engine.DashRuns())), nil
}

func (r *Runner) status() string {
	return fmt.Sprintf("selection=%v area=%d", r.engine.HasSelection(), r.engine.Area())
}

// parsePath reads an even-length list of coordinates into path points.
func parsePath(args []string) ([]coords.Point, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("odd coordinate count %d", len(args))
	}
	path := make([]coords.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		y, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i+1, err)
		}
		path = append(path, coords.Point{X: x, Y: y})
	}
	return path, nil
}
