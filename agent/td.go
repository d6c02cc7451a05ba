package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/smnguyen/ml-durak/game"
)

// LearningRate is the fixed TD(0) step size.
const LearningRate = 0.1

// tdUpdate applies one online TD(0) step to the weight vector in place.
//
// The residual is reward - value(pre), plus value(post) when a post state is
// given. The bootstrap term is additive, with no discount factor and no
// subtraction of the current value from it. That is not the canonical TD(0)
// target, but it is the trained behavior the weight files encode, so it must
// not be "corrected" without retraining; td_test.go pins the arithmetic.
//
// A nil pre state is a no-op: the first defense of a game has no prior
// defend-role state to update from.
func tdUpdate(weights *mat.VecDense, pre, post *game.Snapshot, reward float64) {
	if pre == nil {
		return
	}
	features := Extract(*pre)
	v := Value(weights, features)
	residual := reward - v
	if post != nil {
		residual += Value(weights, Extract(*post))
	}
	// Gradient of the sigmoid output per weight is v*(1-v)*feature.
	weights.AddScaledVec(weights, LearningRate*residual*v*(1-v), features)
}
