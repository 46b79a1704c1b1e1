// Package returnitem contains the command and the decision logic for returning a lent catalog item.
package returnitem
