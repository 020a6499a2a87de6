// Package model defines the domain records shared across services: projects,
// tasks, employees and the supporting value types. Records loaded from
// external sources are validated up-front; services treat them as immutable.
package model
