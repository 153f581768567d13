// Package yamldoc renders a domain.Document as YAML.
//
// Mappings are always written in block style with keys in insertion order.
// Arrays consult a per-field Style directive, so identifier lists and
// contact pairs can be written inline:
//
//	sequences:
//	  - protein:
//	      id: [A, B]
//	      sequence: MKV
//	      msa: empty
//	constraints:
//	  - pocket:
//	      binder: L1
//	      contacts: [[A, 5]]
package yamldoc
