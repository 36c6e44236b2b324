/* Package main: SORTH -- a small line oriented FORTH

SORTH reads program text a line at a time, splits each line on whitespace,
and runs the resulting words left to right against a single shared value
stack. Each line answers with the text its words printed, followed by "Ok."
once the whole line has run.

	> 2 3 + .
	5 Ok.
	> : sq dup * ;
	Ok.
	> 4 sq .
	16 Ok.

Section 1: Values

Every value on the stack carries its kind: int (32 bits), long (64 bits,
written 7L), float (32 bits, written 1.5f), double (written 1.5), byte
(written 0x2a) or str. Arithmetic on two numbers widens the narrower one, in
the order byte, int, long, float, double; the only exception is that two
bytes add, subtract and multiply as ints. Adding two strings joins them with
a single space. Comparisons push -1 for true and 0 for false, and read from
the top of the stack down, so "2 3 >" asks whether 3 is greater than 2.

Section 2: Words

Built in words come first, then definitions, then literals; the first to
recognize a token runs it. Definitions are compiled with ":" and ";" and
stored as text, so redefining a word changes every later call to it:

	: name body ... ;    define or redefine name
	see name             print the stored definition of name

Conditionals nest, and a branch that is not taken still counts its if and
then words so that nested conditionals stay balanced:

	flag if ... else ... then

Loops run within a single line or definition. A for loop keeps its index on
a loop stack, where i can read it, even from within definitions it calls:

	limit index for ... next
	limit index for ... step bynext
	while ... flag do ... again

Variables hold a sequence of values, addressed by the index that @name
pushes:

	let name
	@name v push    @name pop    @name len
	@name i get     @name i v set

Strings are written "word" or as " several words ", and comments as
( ... ). The input word pops a prompt string and outputs it; the next line
given to the interpreter is then pushed as a string rather than run.

Section 3: Sessions

The interpreter runs script files named on its command line in order, or
reads lines from a terminal. Errors are reported and the session goes on;
bye ends it.

*/
package main
