package scheduler

// Package scheduler implements the greedy multi-day planning engine. Each
// day it resolves the free time left by blocked intervals, ranks the pending
// tasks by continuation, deadline pressure and priority, and carves sessions
// out of the free intervals first-fit, respecting a per-day cap on newly
// started tasks and an idle buffer between sessions. Tasks that cannot be
// started or continued surface as warnings on the affected day.
