// Copyright (C) 2018-2026, The rai Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rai

import "fmt"

// ValidationError reports a malformed argument. It is raised before any
// network round trip, so a call failing with it never reached the node.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Error is a business-level failure reported by the node itself, such as
// an unknown account or a control-required action on a node that has
// control disabled. The node signals these with an "error" field in an
// otherwise successful HTTP response.
type Error struct {
	Action  string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("node error in %s: %s", e.Action, e.Message)
}
