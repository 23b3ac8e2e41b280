// Package areatime models how long a unit spends in each area. A timer is
// write-once per (unit, area): start it live on the floor or record a
// duration manually, but never overwrite a finished record.
package areatime
