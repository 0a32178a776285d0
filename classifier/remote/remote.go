// Package remote implements the TCP-backed classifier: the engine listens,
// a function-under-test process connects, and each classification is one
// blocking request/response exchange over a line-oriented wire protocol
// built directly on net/bufio.
package remote

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/toazbenj/racing-sembas/classifier"
	"github.com/toazbenj/racing-sembas/geom"
)

// precision is the minimum number of digits after the decimal point used
// for wire-encoded coordinates; encodeVector adds one digit per leading
// zero after the point so nonzero coordinates keep at least 15 significant
// digits.
const precision = 17

// Classifier drives one TCP peer: it listens, accepts exactly one
// connection, exchanges the handshake, and thereafter answers Classify by
// sending the probed point and parsing the peer's reply. Once the
// transport fails, every subsequent Classify call returns the same error
// (classifier.ErrRemoteDisconnected or classifier.ErrProtocol) without
// touching the socket again.
type Classifier struct {
	conn net.Conn
	rw   *bufio.ReadWriter

	dim    int
	domain geom.Domain

	sticky error

	// ReadTimeout bounds each response wait; zero means no timeout. A
	// timeout surfaces as classifier.ErrProtocol.
	ReadTimeout time.Duration

	// Verbose gates request/response tracing through gosl/io.
	Verbose bool
}

// Listen opens a TCP listener on addr (host:port, or ":0" for an ephemeral
// port), accepts exactly one connection, and performs the handshake:
// exchanging the dimensionality N and the domain's lo/hi vectors. The
// listener is closed once the peer connects; Close releases the
// connection. addr may be empty to bind an ephemeral port on all
// interfaces.
func Listen(addr string, domain geom.Domain) (*Classifier, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("remote: listen %s: %w", addr, err)
	}

	conn, err := ln.Accept()
	if err != nil {
		ln.Close()
		return nil, fmt.Errorf("remote: accept: %w", err)
	}
	ln.Close()

	c := &Classifier{
		conn:   conn,
		rw:     bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn)),
		dim:    domain.Dim(),
		domain: domain,
	}

	if err := c.handshake(); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// Addr returns the local address of the accepted connection, useful for
// logging the ephemeral port chosen by ":0".
func (c *Classifier) Addr() net.Addr {
	return c.conn.LocalAddr()
}

func (c *Classifier) handshake() error {
	if err := c.writeLine(fmt.Sprintf("%d", c.dim)); err != nil {
		return c.fail(classifier.ErrRemoteDisconnected, err)
	}
	if err := c.writeLine(encodeVector(c.domain.Lo)); err != nil {
		return c.fail(classifier.ErrRemoteDisconnected, err)
	}
	if err := c.writeLine(encodeVector(c.domain.Hi)); err != nil {
		return c.fail(classifier.ErrRemoteDisconnected, err)
	}
	c.logf("handshake sent: N=%d lo=%s hi=%s", c.dim, encodeVector(c.domain.Lo), encodeVector(c.domain.Hi))
	return nil
}

// Classify sends p (already normalized to [0,1]^N by the caller) to the
// remote peer and blocks for exactly one reply.
func (c *Classifier) Classify(p geom.Vector) (bool, error) {
	if c.sticky != nil {
		return false, c.sticky
	}
	if p.Dim() != c.dim {
		return false, fmt.Errorf("remote: point has dimension %d, want %d: %w", p.Dim(), c.dim, classifier.ErrProtocol)
	}

	if c.ReadTimeout > 0 {
		c.conn.SetDeadline(time.Now().Add(c.ReadTimeout))
	}

	if err := c.writeLine(encodeVector(p)); err != nil {
		return false, c.fail(classifier.ErrRemoteDisconnected, err)
	}

	line, err := c.rw.ReadString('\n')
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return false, c.fail(classifier.ErrProtocol, err)
		}
		return false, c.fail(classifier.ErrRemoteDisconnected, err)
	}
	reply := strings.TrimSpace(line)
	c.logf("probe=%s reply=%q", encodeVector(p), reply)

	switch {
	case reply == "IN":
		return true, nil
	case reply == "OUT":
		return false, nil
	case reply == "OOB":
		return false, classifier.ErrOutOfBounds
	case strings.HasPrefix(reply, "ERR"):
		return false, fmt.Errorf("remote: %s: %w", reply, classifier.ErrProtocol)
	default:
		return false, c.fail(classifier.ErrProtocol, fmt.Errorf("remote: malformed reply %q", reply))
	}
}

// Close releases the underlying connection.
func (c *Classifier) Close() error {
	return c.conn.Close()
}

func (c *Classifier) fail(sentinel error, cause error) error {
	c.sticky = fmt.Errorf("remote: %w: %v", sentinel, cause)
	return c.sticky
}

func (c *Classifier) writeLine(s string) error {
	if _, err := c.rw.WriteString(s + "\n"); err != nil {
		return err
	}
	return c.rw.Flush()
}

func (c *Classifier) logf(format string, args ...interface{}) {
	if c.Verbose {
		io.Pf("remote> "+format+"\n", args...)
	}
}

// encodeVector renders v as space-separated decimal (never scientific
// notation) doubles with at least 15 significant digits.
func encodeVector(v geom.Vector) string {
	parts := make([]string, len(v))
	for i, x := range v {
		prec := precision
		if x != 0 {
			if lead := -int(math.Floor(math.Log10(math.Abs(x)))) - 1; lead > 0 {
				prec += lead
			}
		}
		parts[i] = strconv.FormatFloat(x, 'f', prec, 64)
	}
	return strings.Join(parts, " ")
}
