package fetch

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"github.com/aretw0/drills/pkg/numeric"
	json "github.com/goccy/go-json"
)

// Task is one entry of a to-do list document.
type Task struct {
	UserID    any    `json:"userId"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed any    `json:"completed"`
}

// Tally counts completed tasks per user. Keys keep object-key ordering:
// integer keys ascending, then other keys in insertion order.
type Tally struct {
	counts map[string]int
	order  []string
}

// Get returns the number of completed tasks for user.
func (t *Tally) Get(user string) int {
	return t.counts[user]
}

// Len returns the number of users with at least one completed task.
func (t *Tally) Len() int {
	return len(t.order)
}

// Keys returns the user keys in output order.
func (t *Tally) Keys() []string {
	var ints, others []string
	for _, k := range t.order {
		if isIndexKey(k) {
			ints = append(ints, k)
		} else {
			others = append(others, k)
		}
	}
	slices.SortFunc(ints, func(a, b string) int {
		x, _ := strconv.ParseUint(a, 10, 64)
		y, _ := strconv.ParseUint(b, 10, 64)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
	return append(ints, others...)
}

func (t *Tally) add(user string) {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	if _, ok := t.counts[user]; !ok {
		t.order = append(t.order, user)
	}
	t.counts[user]++
}

// MarshalJSON writes the tally as an object with keys in Keys order.
func (t *Tally) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(t.counts[k]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CompletedByUser decodes a task array and counts, per userId, the tasks
// whose completed field is exactly true.
func CompletedByUser(body []byte) (*Tally, error) {
	var tasks []Task
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	tally := &Tally{counts: make(map[string]int)}
	for _, task := range tasks {
		if done, ok := task.Completed.(bool); !ok || !done {
			continue
		}
		tally.add(userKey(task.UserID))
	}
	return tally, nil
}

func userKey(v any) string {
	switch id := v.(type) {
	case float64:
		return numeric.Format(id)
	case string:
		return id
	case nil:
		return "null"
	default:
		return fmt.Sprint(id)
	}
}

// isIndexKey reports whether k is a canonical non-negative integer key.
func isIndexKey(k string) bool {
	if k == "" || (len(k) > 1 && k[0] == '0') {
		return false
	}
	_, err := strconv.ParseUint(k, 10, 32)
	return err == nil
}
