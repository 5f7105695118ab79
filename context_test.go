// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package simdhash

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/rand"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

type md5Test struct {
	in   string
	want string
}

var golden = []md5Test{
	{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "014842d480b571495a4a0363793f7367"},
	{"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", "0b649bcb5a82868817fec9a6e709d233"},
	{"cccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccc", "bcd5708ed79b18f0f0aaa27fd0056d86"},
	{"dddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddd", "e987c862fbd2f2f0ca859cb8d7806bf3"},
	{"", "d41d8cd98f00b204e9800998ecf8427e"},
	{"a", "0cc175b9c0f1b6a831c399e269772661"},
	{"ab", "187ef4436122d1cc2f40dc2b92f0eba0"},
	{"abc", "900150983cd24fb0d6963f7d28e17f72"},
	{"abcd", "e2fc714c4727ee9395f324cd2e7f331f"},
	{"abcde", "ab56b4d92b40713acc5af89985d4b786"},
	{"abcdef", "e80b5017098950fc58aad83c8c14978e"},
	{"abcdefg", "7ac66c0f148de9519b8bd264312c4d64"},
	{"abcdefgh", "e8dc4081b13434b45189a720b77b6818"},
	{"abcdefghi", "8aa99b1f439ff71293e95357bac6fd94"},
	{"abcdefghij", "a925576942e94b2ef57a066101b48876"},
	{"Discard medicine more than two years old.", "d747fc1719c7eacb84058196cfe56d57"},
	{"He who has a shady past knows that nice guys finish last.", "bff2dcb37ef3a44ba43ab144768ca837"},
	{"I wouldn't marry him with a ten foot pole.", "0441015ecb54a7342d017ed1bcfdbea5"},
	{"Free! Free!/A trip/to Mars/for 900/empty jars/Burma Shave", "9e3cac8e9e9757a60c3ea391130d3689"},
	{"The days of the digital watch are numbered.  -Tom Stoppard", "a0f04459b031f916a59a35cc482dc039"},
	{"Nepal premier won't resign.", "e7a48e0fe884faf31475d2a04b1362cc"},
	{"For every action there is an equal and opposite government program.", "637d2fe925c07c113800509964fb0e06"},
	{"His money is twice tainted: 'taint yours and 'taint mine.", "834a8d18d5c6562119cf4c7f5086cb71"},
	{"There is no reason for any individual to have a computer in their home. -Ken Olsen, 1977", "de3a4d2fd6c73ec2db2abad23b444281"},
	{"It's a tiny change to the code and not completely disgusting. - Bob Manchek", "acf203f997e2cf74ea3aff86985aefaf"},
	{"size:  a.out:  bad magic", "e1c1384cb4d2221dfdd7c795a4222c9a"},
	{"The major problem is with sendmail.  -Mark Horton", "c90f3ddecc54f34228c063d7525bf644"},
	{"Give me a rock, paper and scissors and I will move the world.  CCFestoon", "cdf7ab6c1fd49bd9933c43f3ea5af185"},
	{"If the enemy is within range, then so are you.", "83bc85234942fc883c063cbd7f0ad5d0"},
	{"It's well we cannot hear the screams/That we create in others' dreams.", "277cbe255686b48dd7e8f389394d9299"},
	{"You remind me of a TV show, but that's all right: I watch it anyway.", "fd3fb0a7ffb8af16603f3d3af98f8e1f"},
	{"C is as portable as Stonehedge!!", "469b13a78ebf297ecda64d4723655154"},
	{"Even if I could be Shakespeare, I think I should still choose to be Faraday. - A. Huxley", "63eb3a2f466410104731c4b037600110"},
	{"The fugacity of a constituent in a mixture of gases at a given temperature is proportional to its mole fraction.  Lewis-Randall Rule", "72c2ed7592debca1c90fc0100f931a2f"},
	{"How can you write a big system without C++?  -Paul Glick", "132f7619d33b523b1d9e5bd8e0928355"},
}

func TestGolden(t *testing.T) {
	for start := 0; start < len(golden); start += Lanes {
		end := start + Lanes
		if end > len(golden) {
			end = len(golden)
		}
		batch := golden[start:end]

		c := NewContext(MD5)
		buffers := make([][]byte, len(batch))
		for i, g := range batch {
			buffers[i] = []byte(g.in)
		}
		c.Update(buffers)
		c.Finalize()

		for i, g := range batch {
			if got := hex.EncodeToString(c.Digest(i)); got != g.want {
				t.Errorf("TestGolden[%d], got %v, want %v", start+i, got, g.want)
			}
		}
	}
}

type knownAnswer struct {
	alg  Algorithm
	in   string
	want string
}

var knownAnswers = []knownAnswer{
	{MD4, "", "31d6cfe0d16ae931b73c59d7e0c089c0"},
	{MD4, "abc", "a448017aaf21d8525fc10ae87aa6729d"},
	{MD5, "abc", "900150983cd24fb0d6963f7d28e17f72"},
	{SHA1, "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	{SHA1, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	{SHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{SHA384, "abc", "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
	{SHA512, "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	{NTLM, "password", "8846f7eaee8fb117ad06bdd830b7586c"},
}

func TestKnownAnswers(t *testing.T) {
	for _, ka := range knownAnswers {
		t.Run(fmt.Sprintf("%v/%q", ka.alg, ka.in), func(t *testing.T) {
			c := NewContext(ka.alg)
			buffers := make([][]byte, Lanes)
			for i := range buffers {
				buffers[i] = []byte(ka.in)
			}
			c.Update(buffers)
			c.Finalize()
			for lane := 0; lane < Lanes; lane++ {
				if got := hex.EncodeToString(c.Digest(lane)); got != ka.want {
					t.Fatalf("lane %d: got %s, want %s", lane, got, ka.want)
				}
			}
			if got := hex.EncodeToString(Sum(ka.alg, []byte(ka.in))); got != ka.want {
				t.Fatalf("scalar: got %s, want %s", got, ka.want)
			}
		})
	}
}

// randomBuffers returns one buffer per lane with lengths spread around the
// padding boundaries.
func randomBuffers(rng *rand.Rand, maxLen int) [][]byte {
	buffers := make([][]byte, Lanes)
	for i := range buffers {
		buffers[i] = make([]byte, rng.Intn(maxLen+1))
		rng.Read(buffers[i])
	}
	return buffers
}

func TestAgainstScalar(t *testing.T) {
	// Use deterministic RNG.
	rng := rand.New(rand.NewSource(0xabad1dea))

	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			for iter := 0; iter < 50; iter++ {
				buffers := randomBuffers(rng, 300)
				out := make([]byte, Lanes*alg.Size())
				Hash(alg, buffers, out)
				for lane, p := range buffers {
					got := out[lane*alg.Size() : (lane+1)*alg.Size()]
					if want := Sum(alg, p); !bytes.Equal(got, want) {
						t.Fatalf("iteration %d lane %d (len %d): got %x, want %x", iter, lane, len(p), got, want)
					}
				}
			}
		})
	}
}

func TestPaddingBoundaries(t *testing.T) {
	lengths := []int{0, 1, 55, 56, 57, 63, 64, 65, 119, 120, 127, 128, 129}
	for _, alg := range Algorithms() {
		for _, n := range lengths {
			// every lane gets a different length around n
			buffers := make([][]byte, Lanes)
			for lane := range buffers {
				buffers[lane] = bytes.Repeat([]byte{0x61 + byte(lane)}, n+lane%3)
			}
			c := NewContext(alg)
			c.Update(buffers)
			c.Finalize()
			for lane, p := range buffers {
				if got, want := c.Digest(lane), Sum(alg, p); !bytes.Equal(got, want) {
					t.Errorf("%v len %d lane %d: got %x, want %x", alg, len(p), lane, got, want)
				}
			}
		}
	}
}

func TestChunkedUpdate(t *testing.T) {
	rng := rand.New(rand.NewSource(0xabad1dea))

	for _, alg := range Algorithms() {
		if alg == NTLM {
			// chunks may split a UTF-8 sequence
			continue
		}
		t.Run(alg.String(), func(t *testing.T) {
			for iter := 0; iter < 20; iter++ {
				buffers := randomBuffers(rng, 1000)
				c := NewContext(alg)
				rest := make([][]byte, Lanes)
				copy(rest, buffers)
				for pending := true; pending; {
					pending = false
					chunk := make([][]byte, Lanes)
					for lane, p := range rest {
						if len(p) == 0 {
							continue
						}
						n := rng.Intn(len(p) + 1)
						chunk[lane], rest[lane] = p[:n], p[n:]
						pending = true
					}
					c.Update(chunk)
				}
				c.Finalize()

				for lane, p := range buffers {
					if got, want := c.Digest(lane), Sum(alg, p); !bytes.Equal(got, want) {
						t.Fatalf("iteration %d lane %d: got %x, want %x", iter, lane, got, want)
					}
				}
			}
		})
	}
}

func TestDivergentLanesUntouched(t *testing.T) {
	c := qt.New(t)

	// lane 0 receives several blocks while every other lane stays empty
	ctx := NewContext(SHA256)
	buffers := make([][]byte, Lanes)
	buffers[0] = bytes.Repeat([]byte{0x42}, 10*BlockSize+3)
	ctx.Update(buffers)
	ctx.Finalize()

	c.Assert(ctx.Digest(0), qt.DeepEquals, Sum(SHA256, buffers[0]))
	for lane := 1; lane < Lanes; lane++ {
		c.Assert(ctx.Digest(lane), qt.DeepEquals, Sum(SHA256, nil), qt.Commentf("lane %d", lane))
	}
}

func TestGetDigests(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, alg := range Algorithms() {
		ctx := NewContext(alg)
		ctx.Update(randomBuffers(rng, 200))
		ctx.Finalize()

		all := make([]byte, Lanes*alg.Size())
		ctx.GetDigests(all)

		var each []byte
		for lane := 0; lane < Lanes; lane++ {
			each = append(each, ctx.Digest(lane)...)
		}
		if diff := cmp.Diff(each, all); diff != "" {
			t.Errorf("%v: GetDigests differs from GetDigest (-want +got):\n%s", alg, diff)
		}
	}
}

func TestSetLaneCount(t *testing.T) {
	c := qt.New(t)

	ctx := NewContext(MD5)
	ctx.SetLaneCount(1)
	c.Assert(ctx.Lanes(), qt.Equals, 1)

	buffers := make([][]byte, Lanes)
	for i := range buffers {
		buffers[i] = []byte("abc")
	}
	ctx.Update(buffers)
	ctx.Finalize()

	out := bytes.Repeat([]byte{0xee}, Lanes*SizeMD5)
	ctx.GetDigests(out)
	c.Assert(hex.EncodeToString(out[:SizeMD5]), qt.Equals, "900150983cd24fb0d6963f7d28e17f72")
	c.Assert(out[SizeMD5:], qt.DeepEquals, bytes.Repeat([]byte{0xee}, (Lanes-1)*SizeMD5))

	c.Assert(func() { ctx.SetLaneCount(0) }, qt.PanicMatches, `.*lane count 0 out of range.*`)
	c.Assert(func() { ctx.SetLaneCount(Lanes + 1) }, qt.PanicMatches, `.*out of range.*`)
}

func TestUpdateLanes(t *testing.T) {
	c := qt.New(t)

	buffers := make([][]byte, Lanes)
	lengths := make([]int, Lanes)
	for i := range buffers {
		buffers[i] = []byte("abcdefghij")
		lengths[i] = i % 11
	}

	ctx := NewContext(SHA1)
	ctx.UpdateLanes(lengths, buffers)
	ctx.Finalize()
	for lane := range buffers {
		c.Assert(ctx.Digest(lane), qt.DeepEquals, Sum(SHA1, buffers[lane][:lengths[lane]]))
	}

	ctx.Init(SHA1)
	ctx.UpdateAll(3, buffers)
	ctx.Finalize()
	for lane := range buffers {
		c.Assert(hex.EncodeToString(ctx.Digest(lane)), qt.Equals, "a9993e364706816aba3e25717850c26c9cd0d89d")
	}
}

func TestContractViolations(t *testing.T) {
	c := qt.New(t)

	ctx := NewContext(MD5)
	ctx.Finalize()
	c.Assert(func() { ctx.Update([][]byte{[]byte("x")}) }, qt.PanicMatches, `.*already finalized.*`)
	c.Assert(func() { ctx.Finalize() }, qt.PanicMatches, `.*already finalized.*`)

	// Init makes the context usable again
	ctx.Init(MD5)
	ctx.Update([][]byte{[]byte("abc")})
	ctx.Finalize()
	c.Assert(hex.EncodeToString(ctx.Digest(0)), qt.Equals, "900150983cd24fb0d6963f7d28e17f72")

	a, b := NewContext(MD5), NewContext(SHA1)
	c.Assert(func() { a.copyLane(b, 0) }, qt.PanicMatches, `.*mismatched contexts.*`)
	b.Init(MD5)
	b.SetLaneCount(2)
	c.Assert(func() { a.copyLane(b, 0) }, qt.PanicMatches, `.*mismatched contexts.*`)

	c.Assert(func() { a.GetDigest(0, make([]byte, 4)) }, qt.PanicMatches, `.*need 16.*`)
}

func TestCopyLane(t *testing.T) {
	c := qt.New(t)

	src, dst := NewContext(SHA256), NewContext(SHA256)
	buffers := make([][]byte, Lanes)
	buffers[Lanes-1] = []byte("abc")
	src.Update(buffers)
	dst.copyLane(src, Lanes-1)
	dst.Finalize()
	c.Assert(hex.EncodeToString(dst.Digest(Lanes-1)), qt.Equals,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
}

func TestUnknownAlgorithm(t *testing.T) {
	c := qt.New(t)

	ctx := NewContext(Algorithm(99))
	c.Assert(ctx.Algorithm(), qt.Equals, Undefined)
	c.Assert(ctx.Size(), qt.Equals, 0)
	ctx.Update([][]byte{[]byte("abc")})
	ctx.Finalize()
	ctx.GetDigests(nil)
	c.Assert(ctx.ExtendEntropy(nil, 10), qt.ErrorIs, ErrUnsupported)

	out := []byte{1, 2, 3}
	Hash(Undefined, [][]byte{[]byte("abc")}, out)
	c.Assert(out, qt.DeepEquals, []byte{1, 2, 3})
	c.Assert(Sum(Undefined, []byte("abc")), qt.IsNil)
}

func TestHashPartialBatch(t *testing.T) {
	c := qt.New(t)

	for _, alg := range Algorithms() {
		msgs := [][]byte{[]byte("one"), []byte("two")}
		out := make([]byte, len(msgs)*alg.Size())
		Hash(alg, msgs, out)
		for i, m := range msgs {
			c.Assert(out[i*alg.Size():(i+1)*alg.Size()], qt.DeepEquals, Sum(alg, m))
		}
	}
}

func benchmarkHash(b *testing.B, alg Algorithm, blockSize int) {
	buffers := make([][]byte, Lanes)
	for i := range buffers {
		buffers[i] = bytes.Repeat([]byte{0x61 + byte(i)}, blockSize)
	}
	out := make([]byte, Lanes*alg.Size())

	b.SetBytes(int64(blockSize * Lanes))
	b.ReportAllocs()
	b.ResetTimer()

	for j := 0; j < b.N; j++ {
		Hash(alg, buffers, out)
	}
}

func BenchmarkHash(b *testing.B) {
	for _, alg := range []Algorithm{MD4, MD5, SHA1, SHA256} {
		b.Run(alg.String()+"/64B", func(b *testing.B) {
			benchmarkHash(b, alg, 64)
		})
		b.Run(alg.String()+"/1KB", func(b *testing.B) {
			benchmarkHash(b, alg, 1024)
		})
		b.Run(alg.String()+"/32KB", func(b *testing.B) {
			benchmarkHash(b, alg, 32*1024)
		})
	}
}
