/*
Package persistent is the home of immutable persistent data structures.

Persistent data structures are never modified in place: every “modification”
returns a new value, leaving the original unchanged. Unchanged parts are shared
between the old and the new value (structural sharing), which makes copies cheap
and lets any number of goroutines read a value without synchronization.

Sub-packages:

	list   singly-linked list, with folds from the left and from the right
	tree   binary tree with values at its leaves, built around a single fold

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package persistent
