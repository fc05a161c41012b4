package board

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban/internal/domain"
)

type unknownOp struct{}

func (unknownOp) Kind() OperationKind { return "unknown" }

func TestApply_Dispatch(t *testing.T) {
	e := newTestEngine()
	seed := domain.SeedBoard()

	tests := []struct {
		name        string
		op          Operation
		wantChanged bool
		wantCount   int
	}{
		{"add", AddOp{Column: domain.ColumnDone, Content: "Write docs"}, true, 6},
		{"add blank", AddOp{Column: domain.ColumnTodo, Content: "   "}, false, 5},
		{"update", UpdateOp{TaskID: "task-1", Content: "Redesign"}, true, 5},
		{"delete", DeleteOp{TaskID: "task-2"}, true, 4},
		{"delete unknown", DeleteOp{TaskID: "nonexistent"}, false, 5},
		{"drop", DropOp{Active: "task-1", Over: "done"}, true, 5},
		{"drop on self", DropOp{Active: "task-1", Over: "task-1"}, false, 5},
		{"unknown op", unknownOp{}, false, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Apply(seed, tt.op)
			assert.Equal(t, tt.wantChanged, res.Changed)
			assert.Equal(t, tt.wantCount, res.Board.TaskCount())
			if !res.Changed {
				assert.Empty(t, cmp.Diff(seed, res.Board))
			}
		})
	}
}

func TestApply_NeverMutatesInput(t *testing.T) {
	e := newTestEngine()
	seed := domain.SeedBoard()
	snapshot := seed.Clone()

	ops := []Operation{
		AddOp{Column: domain.ColumnTodo, Content: "x"},
		UpdateOp{TaskID: "task-1", Content: "changed"},
		DeleteOp{TaskID: "task-5"},
		DropOp{Active: "task-1", Over: "task-2"},
		DropOp{Active: "task-4", Over: "todo"},
	}
	for _, op := range ops {
		e.Apply(seed, op)
	}

	if diff := cmp.Diff(snapshot, seed); diff != "" {
		t.Errorf("input board modified (-want +got):\n%s", diff)
	}
}

func TestApply_Chain(t *testing.T) {
	e := newTestEngine()

	b := domain.SeedBoard()
	for _, op := range []Operation{
		AddOp{Column: domain.ColumnTodo, Content: "Plan sprint"},
		DropOp{Active: "task-100", Over: "task-1"},
		DeleteOp{TaskID: "task-2"},
	} {
		res := e.Apply(b, op)
		require.True(t, res.Changed, "%#v", op)
		b = res.Board
	}

	assert.Equal(t, []string{"task-100", "task-1"}, ids(b, domain.ColumnTodo))
}

func allIDs(b domain.Board) []string {
	var out []string
	for _, c := range domain.ColumnOrder {
		out = append(out, ids(b, c)...)
	}
	return out
}

// TestApply_RandomSequencesKeepInvariants drives random operations and
// checks task conservation and id uniqueness after every step.
func TestApply_RandomSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	e := newTestEngine()
	b := domain.SeedBoard()
	expected := b.TaskCount()

	targets := func(b domain.Board) []string {
		out := allIDs(b)
		for _, c := range domain.ColumnOrder {
			out = append(out, string(c))
		}
		return append(out, "ghost", "")
	}
	pick := func(xs []string) string { return xs[rng.Intn(len(xs))] }

	for step := 0; step < 2000; step++ {
		var op Operation
		all := targets(b)
		switch rng.Intn(4) {
		case 0:
			content := pick([]string{"task", "  ", "", "another task"})
			op = AddOp{Column: domain.ColumnOrder[rng.Intn(3)], Content: content}
		case 1:
			op = UpdateOp{TaskID: pick(all), Content: fmt.Sprintf("edit %d", step)}
		case 2:
			op = DeleteOp{TaskID: pick(all)}
		default:
			op = DropOp{Active: pick(all), Over: pick(all)}
		}

		res := e.Apply(b, op)
		if res.Changed {
			switch op.(type) {
			case AddOp:
				expected++
			case DeleteOp:
				expected--
			}
		}
		b = res.Board

		require.Equal(t, expected, b.TaskCount(), "step %d op %#v", step, op)
		seen := map[string]bool{}
		for _, id := range allIDs(b) {
			require.False(t, seen[id], "duplicate id %s at step %d", id, step)
			seen[id] = true
		}
	}
}
