package perftests

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"auction-platform/internal/auctionstore"
	"auction-platform/internal/bidservice"
	"auction-platform/internal/bidstore"
	"auction-platform/internal/models"
)

// localAuctionGateway serves auction lookups straight from an in-memory
// store so the benchmarks measure the bid path without HTTP in between.
type localAuctionGateway struct {
	store *auctionstore.MemoryStore
}

func (g *localAuctionGateway) GetAuction(ctx context.Context, auctionID int64) (models.Auction, error) {
	return g.store.GetAuction(ctx, auctionID)
}

func (g *localAuctionGateway) UpdatePrice(ctx context.Context, auctionID int64, newPrice float64) error {
	return g.store.UpdateCurrentPrice(ctx, auctionID, newPrice)
}

const benchOwnerID = 1

// setupBench creates a bid service over in-memory stores with the given
// number of live auctions and returns their IDs.
func setupBench(numAuctions int, startingPrice float64) (*bidservice.BidService, []int64) {
	auctions := auctionstore.NewMemoryStore()
	svc := bidservice.NewBidService(bidstore.NewMemoryStore(), &localAuctionGateway{store: auctions}, time.Second)

	ids := make([]int64, 0, numAuctions)
	for i := 0; i < numAuctions; i++ {
		created, err := auctions.CreateAuction(context.Background(), models.Auction{
			Title:         "Benchmark lot",
			StartingPrice: startingPrice,
			CurrentPrice:  startingPrice,
			Status:        models.StatusLive,
			OwnerID:       benchOwnerID,
			EndsAt:        time.Now().Add(24 * time.Hour),
			CreatedAt:     time.Now(),
		})
		if err != nil {
			panic(err)
		}
		ids = append(ids, created.ID)
	}
	return svc, ids
}

// Benchmark 1: PlaceBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	svc, ids := setupBench(b.N, 50)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidderID := int64(1000 + i)
		amount := float64(51 + rand.Intn(100))
		if _, err := svc.PlaceBid(context.Background(), ids[i], bidderID, amount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Auction (High Contention - Concurrency Benchmark)

func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	svc, ids := setupBench(1, 50)
	auctionID := ids[0]

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidderID := 1000 + rnd.Int63()
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = svc.PlaceBid(context.Background(), auctionID, bidderID, float64(nextBid))
		}
	})
}

// Benchmark 3: HighestBid - Single - Threaded (Low Contention)
func Benchmark_HighestBid_SingleThreaded(b *testing.B) {
	svc, ids := setupBench(b.N, 50)

	for i := 0; i < b.N; i++ {
		for j := 0; j < 10; j++ {
			bidderID := int64(1000 + i*10 + j)
			amount := float64(51 + j*10)
			_, _ = svc.PlaceBid(context.Background(), ids[i], bidderID, amount)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.HighestBid(context.Background(), ids[i]); err != nil {
			b.Fatalf("failed to get highest bid: %v", err)
		}
	}
}

// Benchmark 4: HighestBid - Concurrent (High Contention)
func Benchmark_HighestBid_ConcurrentSharedAuction(b *testing.B) {
	svc, ids := setupBench(1, 50)
	auctionID := ids[0]

	for j := 0; j < 100; j++ {
		bidderID := int64(1000 + j)
		amount := float64(51 + j)
		_, _ = svc.PlaceBid(context.Background(), auctionID, bidderID, amount)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var counter int64

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.HighestBid(context.Background(), auctionID); err != nil {
				b.Fatalf("failed to get highest bid: %v", err)
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedAuction(b *testing.B) {
	svc, ids := setupBench(1, 50)
	auctionID := ids[0]

	for j := 0; j < 50; j++ {
		bidderID := int64(1000 + j)
		amount := float64(51 + j*2)
		_, _ = svc.PlaceBid(context.Background(), auctionID, bidderID, amount)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 150
	var counter int64

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				// Writer: place a new bid
				bidderID := 1000 + rnd.Int63()
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				_, _ = svc.PlaceBid(context.Background(), auctionID, bidderID, float64(nextBid))
			default:
				// Reader: get highest bid
				_, _ = svc.HighestBid(context.Background(), auctionID)
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}
