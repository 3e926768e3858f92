// SPDX-License-Identifier: MIT

package scene

// Test bridge: exposes the backing array of Scene to scene_test so tests can
// check that removed objects are no longer referenced.

// spare returns the slots between len and cap of the object slice.
func (s *Scene) spare() []*Object {
	return s.objects[len(s.objects):cap(s.objects)]
}

var (
	ExportedSceneSpare = (*Scene).spare
)
