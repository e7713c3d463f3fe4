// SPDX-License-Identifier: MPL-2.0

// Package modeltest provides builders and property-test generators for
// plugin.Model values.
//
// This package is separate from testutil so that plain filesystem helpers do
// not pull in the domain model or rapid.
//
// # Usage
//
//	import "github.com/plugsmith/plugsmith/internal/testutil/modeltest"
//
//	mod := modeltest.NewTestModule("Tools",
//	    modeltest.WithNode(modeltest.NewTestNode("Add", modeltest.WithInput("A", plugin.KindInt))),
//	)
//
//	rapid.Check(t, func(t *rapid.T) {
//	    m := modeltest.ModelGen().Draw(t, "model")
//	    ...
//	})
package modeltest
