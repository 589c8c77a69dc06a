// Package yamlspec provides the YAML implementation of the config.Loader
// interface.
//
// Every YAML document in a file declares one spec:
//
//	spec: Calculator
//	before_each: [reset]
//	children:
//	  - describe: add
//	    focus: true
//	    children:
//	      - it: sums
//	        run: sum
//	        timeout: 2s
//	  - context: divide
//	    ignore: true
package yamlspec
