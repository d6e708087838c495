// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// PathRun is the predicate function for pathrun builders.
type PathRun func(*sql.Selector)

// PathSession is the predicate function for pathsession builders.
type PathSession func(*sql.Selector)

// PathStep is the predicate function for pathstep builders.
type PathStep func(*sql.Selector)

// PathTemplate is the predicate function for pathtemplate builders.
type PathTemplate func(*sql.Selector)

// Text is the predicate function for text builders.
type Text func(*sql.Selector)

// Vocab is the predicate function for vocab builders.
type Vocab func(*sql.Selector)
