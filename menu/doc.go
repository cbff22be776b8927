// Package menu is the interactive front end: it owns one integer sequence,
// renders the main menu, asks the learner for values through a Prompter and
// dispatches each choice to the search and sorting packages.
//
// Menu
//
//	0  regenerate the sequence, then choose whether to trace step by step
//	1  sequential search
//	2  bubble sort followed by binary search
//	3  sort with a chosen method (1..5), then print its counters
//	4  exit
//	5  session statistics
//	6  complexity table
//
// Invalid choices and failed generations are reported and the loop goes on;
// the sequence is left untouched. End of input behaves like exit.
//
// Console is the Prompter used by the command; tests script it with a
// strings.Reader or substitute their own Prompter.
package menu
