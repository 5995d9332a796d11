// Package dt provides the container types used with the linked
// sequence sorters of the order package: a doubly linked List whose
// Elements implement order.Node, and whose relinking operations
// implement order.Linked.
package dt
