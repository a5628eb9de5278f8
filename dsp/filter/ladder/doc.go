// Package ladder provides causal 4th-order recursive filters built from
// four coupled one-pole stages with final-stage feedback: a low-pass and a
// high-pass cascade, both parametrized per sample by cutoff frequency and
// feedback amount.
//
// Two forms are exposed:
//   - Batch: Lowpass and Highpass consume a whole signal and allocate the
//     output. Cutoff and feedback are core.Param values, so both may vary
//     per sample.
//   - Incremental: LowpassInit/LowpassStep and HighpassInit/HighpassStep
//     thread an explicit State value through the recurrence one sample at a
//     time, for callers that drive the filter from their own loop. The
//     batch forms are plain folds over the step forms.
//
// The recurrences are strictly sequential: the state at sample n+1 depends
// on the state at sample n. Feedback routes the fourth stage back into the
// first stage input; raising it colors the response toward resonance and
// eventually self-oscillation.
package ladder
