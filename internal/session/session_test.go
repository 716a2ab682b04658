package session_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/session"
	"github.com/san-kum/algoviz/internal/stepper"
)

func instant(ctx context.Context, d time.Duration) error { return ctx.Err() }

var _ = Describe("Session", func() {
	var (
		rec *stepper.Recorder
		s   *session.Session
		ctx context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		rec = &stepper.Recorder{}
		s = session.New(session.Options{Size: 50, Min: 10, Max: 100, Seed: 1}, rec,
			session.WithSleep(instant),
			session.WithLogger(logging.Discard()),
		)
	})

	Describe("Generate", func() {
		It("draws Size values inside [Min, Max] with a neutral mask", func() {
			f := s.Generate()

			Expect(f.Values).To(HaveLen(50))
			Expect(f.Mask).To(HaveLen(50))
			for i, v := range f.Values {
				Expect(v).To(BeNumerically(">=", 10))
				Expect(v).To(BeNumerically("<=", 100))
				Expect(f.Mask[i]).To(Equal(algo.Neutral))
			}
			Expect(rec.Frames()).To(BeEmpty())
		})

		It("replaces the dataset on every call", func() {
			first := s.Generate()
			second := s.Generate()
			Expect(second.Values).NotTo(Equal(first.Values))
		})
	})

	Describe("Start rejections", func() {
		It("rejects a run before any dataset exists", func() {
			_, err := s.Start(ctx, session.Request{Algorithm: "Bubble Sort", Delay: time.Millisecond})
			Expect(err).To(MatchError(session.ErrNoDataset))
			Expect(rec.Frames()).To(BeEmpty())
		})

		It("rejects a search with an empty target and leaves the dataset alone", func() {
			s.Load([]int{8, 1, 5, 3})

			_, err := s.Start(ctx, session.Request{Algorithm: "Binary Search", Delay: time.Millisecond, Target: ""})
			Expect(err).To(MatchError(session.ErrInvalidTarget))

			data, ok := s.Snapshot()
			Expect(ok).To(BeTrue())
			Expect(data).To(Equal([]int{8, 1, 5, 3}))
			Expect(rec.Frames()).To(BeEmpty())
			Expect(s.Running()).To(BeFalse())
		})

		It("rejects a non-numeric target", func() {
			s.Load([]int{1, 2, 3})
			_, err := s.Start(ctx, session.Request{Algorithm: "Ternary Search", Delay: time.Millisecond, Target: "abc"})
			Expect(err).To(MatchError(session.ErrInvalidTarget))
		})

		It("rejects unknown algorithms", func() {
			s.Generate()
			_, err := s.Start(ctx, session.Request{Algorithm: "Quick Sort", Delay: time.Millisecond})
			Expect(err).To(MatchError(session.ErrUnknownAlgorithm))
		})

		It("rejects a non-positive delay", func() {
			s.Generate()
			_, err := s.Start(ctx, session.Request{Algorithm: "Heap Sort"})
			Expect(err).To(MatchError(session.ErrInvalidDelay))
		})

		It("ignores the target field for sorts", func() {
			s.Generate()
			_, err := s.Start(ctx, session.Request{Algorithm: "Merge Sort", Delay: time.Millisecond, Target: "not a number"})
			Expect(err).NotTo(HaveOccurred())
			s.Wait()
		})
	})

	Describe("running engines", func() {
		It("animates bubble sort one checkpoint per swap", func() {
			s.Load([]int{5, 3, 8, 1})

			run, err := s.Start(ctx, session.Request{Algorithm: "Bubble Sort", Delay: time.Millisecond})
			Expect(err).NotTo(HaveOccurred())
			s.Wait()

			frames := rec.Frames()
			Expect(frames).To(HaveLen(4))
			for _, f := range frames {
				Expect(f.Run).To(Equal(run))
				Expect(f.Mask.Emphasised()).To(HaveLen(2))
			}

			data, ok := s.Snapshot()
			Expect(ok).To(BeTrue())
			Expect(data).To(Equal([]int{1, 3, 5, 8}))

			out, ok := s.Last()
			Expect(ok).To(BeTrue())
			Expect(out.Checkpoints).To(Equal(4))
			Expect(out.Metrics).To(HaveKeyWithValue("disorder", 0.0))
			Expect(rec.Outcomes()).To(HaveLen(1))
		})

		It("sorts un-animated before searching", func() {
			s.Load([]int{8, 1, 5, 3})

			_, err := s.Start(ctx, session.Request{Algorithm: "binary", Delay: time.Millisecond, Target: " 5 "})
			Expect(err).NotTo(HaveOccurred())
			s.Wait()

			frames := rec.Frames()
			Expect(frames).NotTo(BeEmpty())
			Expect(frames[0].Values).To(Equal([]int{1, 3, 5, 8}))
			Expect(frames[0].Mask[1]).To(Equal(algo.Probe))

			out, ok := s.Last()
			Expect(ok).To(BeTrue())
			Expect(out.Index).To(Equal(2))
			Expect(out.Found()).To(BeTrue())
		})

		It("reports not-found for an absent target", func() {
			s.Load([]int{1, 3, 5, 8})

			_, err := s.Start(ctx, session.Request{Algorithm: "Binary Search", Delay: time.Millisecond, Target: "4"})
			Expect(err).NotTo(HaveOccurred())
			s.Wait()

			out, _ := s.Last()
			Expect(out.Index).To(Equal(algo.NotFound))
			Expect(out.Found()).To(BeFalse())
		})
	})

	Describe("cancellation", func() {
		var (
			frames chan stepper.Frame
			live   *session.Session
		)

		BeforeEach(func() {
			frames = make(chan stepper.Frame)
			live = session.New(session.Options{Size: 30, Min: 1, Max: 100, Seed: 7},
				stepper.ChanSink{Frames: frames},
				session.WithLogger(logging.Discard()),
			)
			descending := make([]int, 30)
			for i := range descending {
				descending[i] = 30 - i
			}
			live.Load(descending)
		})

		AfterEach(func() {
			live.Stop()
		})

		It("never delivers checkpoints of an abandoned run after Generate", func() {
			_, err := live.Start(ctx, session.Request{Algorithm: "Bubble Sort", Delay: 5 * time.Millisecond})
			Expect(err).NotTo(HaveOccurred())
			Eventually(frames).Should(Receive())

			live.Generate()

			Expect(live.Running()).To(BeFalse())
			Consistently(frames, 50*time.Millisecond).ShouldNot(Receive())
		})

		It("cancels the previous run when a new one starts", func() {
			first, err := live.Start(ctx, session.Request{Algorithm: "Bubble Sort", Delay: 5 * time.Millisecond})
			Expect(err).NotTo(HaveOccurred())
			Eventually(frames).Should(Receive())

			second, err := live.Start(ctx, session.Request{Algorithm: "Selection Sort", Delay: time.Millisecond})
			Expect(err).NotTo(HaveOccurred())
			Expect(second).NotTo(Equal(first))

			for i := 0; i < 5; i++ {
				var f stepper.Frame
				Eventually(frames).Should(Receive(&f))
				Expect(f.Run).To(Equal(second))
			}
		})

		It("leaves a permutation behind when stopped mid-run", func() {
			_, err := live.Start(ctx, session.Request{Algorithm: "Heap Sort", Delay: time.Millisecond})
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 3; i++ {
				Eventually(frames).Should(Receive())
			}

			live.Stop()

			data, ok := live.Snapshot()
			Expect(ok).To(BeTrue())
			Expect(data).To(HaveLen(30))
			Expect(data).To(ConsistOf(func() []interface{} {
				out := make([]interface{}, 30)
				for i := range out {
					out[i] = i + 1
				}
				return out
			}()...))
			_, ok = live.Last()
			Expect(ok).To(BeFalse())
		})

		It("stops when the caller's context is canceled", func() {
			runCtx, cancel := context.WithCancel(ctx)
			_, err := live.Start(runCtx, session.Request{Algorithm: "Merge Sort", Delay: time.Millisecond})
			Expect(err).NotTo(HaveOccurred())
			Eventually(frames).Should(Receive())

			cancel()
			Eventually(live.Running).Should(BeFalse())
		})
	})

	Describe("ParseTarget", func() {
		DescribeTable("parsing",
			func(in string, want int, ok bool) {
				got, err := session.ParseTarget(in)
				if !ok {
					Expect(err).To(MatchError(session.ErrInvalidTarget))
					return
				}
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(want))
			},
			Entry("plain", "42", 42, true),
			Entry("padded", "  7 ", 7, true),
			Entry("negative", "-3", -3, true),
			Entry("empty", "", 0, false),
			Entry("blank", "   ", 0, false),
			Entry("decimal", "4.5", 0, false),
			Entry("word", "five", 0, false),
		)
	})
})
