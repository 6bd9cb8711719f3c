// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Kind is a named framebuffer layout: a pixel format plus the options
// every framebuffer of that kind is created with.
type Kind struct {
	Name    string
	Format  Format
	Options []FramebufferOption
}

// ErrUnknownKind is returned when no kind is registered under a name.
var ErrUnknownKind = errors.New("surface: unknown kind")

// UnknownKindError names the missing kind and the kinds that exist.
type UnknownKindError struct {
	Name  string
	Known []string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("surface: unknown kind %q (known: %v)", e.Name, e.Known)
}

// Unwrap returns ErrUnknownKind so that errors.Is matches.
func (e *UnknownKindError) Unwrap() error {
	return ErrUnknownKind
}

var (
	kindsMu sync.RWMutex
	kinds   = make(map[string]Kind)
)

func init() {
	for _, k := range []Kind{
		{Name: "mono", Format: FormatMonoHLSB},
		{Name: "rgb565", Format: FormatRGB565},
		// Panels where a set bit is white, such as most e-paper.
		{Name: "epaper", Format: FormatMonoHLSB, Options: []FramebufferOption{WithClearValue(1)}},
	} {
		if err := RegisterKind(k); err != nil {
			panic(err)
		}
	}
}

// RegisterKind makes k available to NewKind. A kind whose format has no
// framebuffer encoding is rejected. Registering an existing name
// replaces it.
func RegisterKind(k Kind) error {
	if k.Name == "" {
		return errors.New("surface: kind without a name")
	}
	if k.Format.Stride(1) == 0 {
		return fmt.Errorf("%w: kind %q uses %v", ErrUnknownFormat, k.Name, k.Format)
	}

	kindsMu.Lock()
	defer kindsMu.Unlock()
	k.Options = slices.Clone(k.Options)
	kinds[k.Name] = k
	return nil
}

// Kinds returns the registered kind names in sorted order.
func Kinds() []string {
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	return slices.Sorted(maps.Keys(kinds))
}

// LookupKind returns the kind registered under name.
func LookupKind(name string) (Kind, bool) {
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	k, ok := kinds[name]
	return k, ok
}

// NewKind creates a framebuffer of the named kind. opts are applied after
// the kind's own options and so override them.
func NewKind(name string, width, height int, opts ...FramebufferOption) (*Framebuffer, error) {
	k, ok := LookupKind(name)
	if !ok {
		return nil, &UnknownKindError{Name: name, Known: Kinds()}
	}
	all := append(slices.Clone(k.Options), opts...)
	return NewFramebuffer(k.Format, width, height, all...)
}
