/*
Package menu loads loop definitions from YAML (or JSON) files.

A file describes one loop and its options; an option either calls a
registered action, returns a constant, or opens a nested menu:

	name: Top Loop
	instructions: Pick an option.
	options:
	  - name: Add
	    trigger: [add, a]
	    kinds: [int]
	    action: sum
	  - name: Settings
	    trigger: s
	    menu:
	      break: b
	      options:
	        - name: Verbose
	          trigger: v
	          returns: verbose

Build compiles a Definition into options for runner.New; Validate reports
structural problems and unreachable options.
*/
package menu
