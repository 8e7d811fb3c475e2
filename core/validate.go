package core

import "fmt"

// ValidatePath checks that sol describes a real walk through sp:
//
//  1. sol.Start equals sp.Start();
//  2. every step is declared by Successors of the state it leaves
//     (matched on target state and cost) and steps chain end to end;
//  3. the final state is a goal;
//  4. the step costs add up to sol.Cost.
//
// Unreachable solutions are valid when they carry no path.
// Errors wrap ErrInvalidPath.
func ValidatePath[S comparable, C Cost](sp Space[S, C], sol Solution[S, C]) error {
	if sp == nil {
		return ErrNilSpace
	}
	if !sol.Reachable {
		if len(sol.Path) != 0 {
			return fmt.Errorf("%w: unreachable solution carries %d steps", ErrInvalidPath, len(sol.Path))
		}
		return nil
	}

	if sol.Start != sp.Start() {
		return fmt.Errorf("%w: path starts at %v, space starts at %v", ErrInvalidPath, sol.Start, sp.Start())
	}

	cur := sol.Start
	var total C
	for i, step := range sol.Path {
		if step.From != cur {
			return fmt.Errorf("%w: step %d leaves %v, expected %v", ErrInvalidPath, i, step.From, cur)
		}
		if !declared(sp, cur, step) {
			return fmt.Errorf("%w: step %d %v->%v (cost %v) is not a declared transition",
				ErrInvalidPath, i, step.From, step.To, step.Cost)
		}
		total += step.Cost
		cur = step.To
	}

	if !sp.IsGoal(cur) {
		return fmt.Errorf("%w: path ends at non-goal state %v", ErrInvalidPath, cur)
	}
	if total != sol.Cost {
		return fmt.Errorf("%w: steps sum to %v, solution reports %v", ErrInvalidPath, total, sol.Cost)
	}

	return nil
}

// declared reports whether from has an outgoing transition matching step.
func declared[S comparable, C Cost](sp Space[S, C], from S, step Transition[S, C]) bool {
	for _, t := range sp.Successors(from) {
		if t.To == step.To && t.Cost == step.Cost {
			return true
		}
	}

	return false
}
