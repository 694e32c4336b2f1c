// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuizCooldown is the predicate function for quizcooldown builders.
type QuizCooldown func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)
