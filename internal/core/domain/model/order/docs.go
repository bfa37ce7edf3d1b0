// Package order contains the Order aggregate and its lifecycle state machine.
// An order is created by checkout in Pending status with server-priced line
// item snapshots and, for delivery orders, a frozen copy of the destination
// address. After creation the only permitted mutation is a status transition.
package order
