// Package view renders a softbody.World with Ebitengine and drives it from
// the mouse, touch and keyboard.
//
// Bodies are drawn as a translucent fill, their connections and their nodes,
// all batched into a handful of DrawTriangles calls. Bodies flash briefly
// when they take part in a contact.
package view
