// Package service contains the application's business logic, orchestrating
// the store layer and reporting failures through a closed error taxonomy.
package service
