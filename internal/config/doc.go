// Package config loads grid column layouts from HCL files.
//
// A layout file holds an optional grid block with the permission flags and
// any number of column blocks, which nest to form column groups:
//
//	grid {
//	  can_user_sort_columns   = true
//	  can_user_resize_columns = true
//	  resize_mode             = "persist"
//	}
//
//	column "name" {
//	  header    = "Name"
//	  width     = auto
//	  min_width = 4
//	}
//
//	column "contact" {
//	  column "email" { width = star(2) }
//	  column "phone" { width = px(14) }
//	}
//
// Widths accept auto, a number of cells, px(n), star(w) or the strings
// "auto", "12", "*" and "2*".
package config
