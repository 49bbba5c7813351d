/*
Package result implements the typed handoff of a value from one screen back to the
screen below it on the back stack.

A screen that produces a value builds a BackNavigator[R] and calls NavigateBack.
The value is encoded and written into the saved state of the previous entry,
under a key made of the producing destination's route and R's type identifier,
and the host is asked to navigate up. The screen below registers a
Recipient[D, R] for the same pair; when its entry is resumed the pending value
is removed from the mailbox and handed to the listener exactly once.

Only simple result types are accepted: strings, booleans, ints, floats, one
level of pointer over those (nullable results) and non-generic types tagged with
the Serializable marker. Anything else fails at construction with
ErrUnsupportedResultType.

A recipient declared for a different origin or a different type than the writer
used simply never receives the value. That isolation is deliberate.
*/
package result
