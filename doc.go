// Package allocator provides a skill-based task allocation engine.
//
// The engine ranks roster employees against the skills a task requires,
// augments the result with AI-suggested complementary skills, and coordinates
// the durable assignment of the chosen employee with idempotent, retryable
// commit semantics. It comes with pluggable service layers:
//
//   - engine      – match scoring and ranked allocation
//   - coordinator – durable assignment commits and reassignment
//   - matcher     – scoring and suggestion providers
//   - roster      – employee sources (in-memory, file system)
//   - dao         – persistence for projects, tasks, allocations, assignments
//
// The allocator is a library designed to be embedded in host applications.
// End-users typically interact through the high-level Service facade exposed
// by this package:
//
//	srv := allocator.New()
//	rt := srv.Runtime()
//	project, _ := rt.AddProject(ctx, "Line 4 retooling", "")
//	task, _ := rt.AddTask(ctx, &allocator.TaskInput{
//		ProjectID:      project.ID,
//		Title:          "Recalibrate welders",
//		RequiredSkills: "welding, plc-programming",
//		Deadline:       "2025-07-01",
//	})
//	result, _ := rt.Allocate(ctx, task.ID)
//	assignment, _ := rt.Commit(ctx, task.ID, result.Candidates[0].EmployeeID)
//
// For more details see the README and individual sub-packages.
package allocator
